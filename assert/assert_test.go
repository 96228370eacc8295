package assert

import (
	"errors"
	"testing"

	"github.com/oomph-ac/milieu/oerror"
)

func TestIsTruePanicsWithError(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic value, got %v", r)
		}
		var oerr *oerror.Error
		if !errors.As(err, &oerr) {
			t.Fatalf("expected *oerror.Error, got %T", err)
		}
		if oerr.Err != "local x=16 out of range" {
			t.Fatalf("unexpected message %q", oerr.Err)
		}
	}()
	IsTrue(false, "local x=%d out of range", 16)
}

func TestIsTrueNoPanic(t *testing.T) {
	IsTrue(true, "never")
}
