package safecall

// Recover is the defer-position form of Do, for functions with a named error
// result:
//
//	func load() (err error) {
//		defer safecall.Recover(&err)
//		risky()
//		return nil
//	}
//
// It must be called directly by a deferred statement; anywhere else the
// runtime gives recover nothing to observe and Recover is a no-op. When no
// panic is in flight, *errp is left untouched.
func Recover(errp *error) {
	if r := recover(); r != nil {
		*errp = asError(r)
	}
}
