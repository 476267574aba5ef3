/*
Package observability provides tools for monitoring the turing editor.

It turns editor lifecycle hooks into Prometheus metrics and lets several hook
sets (metrics, debug logging, a UI refresh) observe the same editor.
*/
package observability
