// Package fetch runs transcript list and fetch operations on background
// goroutines. It tracks tasks, allows one active task per kind and reports
// each task's terminal state through an update callback.
package fetch
