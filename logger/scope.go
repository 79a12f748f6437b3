package logger

// Use opens all three files, runs fn and closes the files on every exit
// path, including a panic in fn. In sequential mode the files are closed
// again right after the initial open, which still surfaces permission
// problems and applies Truncate before fn runs.
//
// A close error is returned only when fn succeeded, so it never hides
// the error that ended the scope.
func (l *Logger) Use(fn func(l *Logger) error) (err error) {
	defer func() {
		closeErr := l.Close()
		if err == nil {
			err = closeErr
		}
	}()

	if err := l.Open(); err != nil {
		return err
	}
	if l.sequential {
		if err := l.Close(); err != nil {
			return err
		}
	}
	return fn(l)
}

// Scoped creates a Logger from cfg and runs fn inside Use
func Scoped(cfg Config, fn func(l *Logger) error) error {
	l, err := New(cfg)
	if err != nil {
		return err
	}
	return l.Use(fn)
}
