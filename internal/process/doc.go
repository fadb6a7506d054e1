// Package process terminates the headless browser started for PDF rendering
// together with the helper processes it forks.
package process
