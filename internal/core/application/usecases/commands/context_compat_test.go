package commands_test

import (
	"context"
	"testing"
)

// testContext mirrors testing.T.Context (Go 1.24): a context canceled when
// the test finishes.
func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
