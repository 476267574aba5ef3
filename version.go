package turing

// Version is the release of the turing module.
const Version = "0.1.0"
