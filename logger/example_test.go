package logger_test

import (
	"os"

	"github.com/emc2/mcl/action"
	"github.com/emc2/mcl/logger"
)

func Example() {
	// Route both streams to stdout so the output is deterministic.
	reg := logger.NewRegistry(action.NewWriterAction(os.Stdout, os.Stdout))

	frontend, err := reg.Define("frontend", logger.InfoLevel)
	if err != nil {
		panic(err)
	}

	frontend.Errorf("cannot reach backend")              // hardwired, always emits
	frontend.Infof("%d requests served", 42)             // Info <= Info
	frontend.Verbosef("headers: %v", []string{"Accept"}) // suppressed at Info

	frontend.SetLevel(logger.VerboseLevel)
	frontend.Verbosef("headers: %v", []string{"Accept"})

	// Output:
	// cannot reach backend
	// 42 requests served
	// headers: [Accept]
}

func ExampleDeclare() {
	old := logger.Default()
	defer logger.SetDefault(old)
	logger.SetDefault(logger.NewRegistry(action.NewWriterAction(os.Stdout, os.Stdout)))

	// Typically the definition lives in one package...
	logger.MustDefine("db", logger.MsgLevel)

	// ...and other packages pick the system up by name.
	db := logger.MustDeclare("db")
	db.Msgf("connection pool ready")

	// Output:
	// connection pool ready
}
