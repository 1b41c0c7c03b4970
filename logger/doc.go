// Package logger is the public API of tinylog. Most users only need to
// import this package.
//
// A Dispatcher holds a severity threshold and an ordered collection of
// handlers. It starts uninitialized: Init sets the threshold and may be
// called again to change it. Every accepted message is timestamped and
// formatted once, then passed to each handler in registration order:
//
//	d := logger.New()
//	d.Init(logger.InfoLevel)
//	h, err := d.AddRotatingFileHandler("app.log", 10<<20, 5)
//	if err != nil {
//	    return err
//	}
//	d.Infof("listening on %d", 8080)
//	defer d.Remove(h)
//
// Handler failures never reach the logging call site. They are counted
// in Stats and passed to the error hook set with
// Builder.WithErrorHandler:
//
//	d := logger.NewBuilder().
//	    WithErrorHandler(handler.ZapErrorHandler(zapLogger)).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// The package-level functions Init, Infof, Debugf, etc. delegate to a
// process default Dispatcher, replaceable with SetDefault.
//
// Level checks happen before any allocation, so filtered-out
// messages cost only a mutex and a single integer comparison.
package logger
