// Package safecall runs caller-supplied work under a panic boundary.
//
// Code that calls into libraries it does not control can be taken down by a
// panic its own error handling never sees. safecall executes a zero-argument
// function, absorbs any panic raised during that execution, and reports the
// outcome as a value instead of letting the panic unwind further: a
// description of the panic on failure, nothing on success.
//
// The boundary covers panics raised synchronously on the calling goroutine.
// Goroutines started by the work, runtime.Goexit, and process-level faults
// are outside its scope.
package safecall
