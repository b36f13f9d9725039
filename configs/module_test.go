package configs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/mm/modes"
)

func TestModuleLoader(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader Loader,
	) {
		// no mm.cue in the package directory, so every lookup misses
		if v := First[int](loader, "buffer_capacity"); v != 0 {
			t.Fatalf("got %v", v)
		}
		if v := First[string](loader, "source_path"); v != "" {
			t.Fatalf("got %v", v)
		}
	})
}
