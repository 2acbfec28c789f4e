package scriptdeps_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/scriptdeps/scriptdeps"
	fsrc "github.com/scriptdeps/scriptdeps/internal/test/fakesrc"
)

func TestScanDir(t *testing.T) {
	t.Parallel()
	dir := fsrc.Dir(t,
		[]fsrc.Option{fsrc.Key("foobar.js")},
		[]fsrc.Option{fsrc.Key("foobar/foo.js"), fsrc.Require("foobar.js")},
		[]fsrc.Option{fsrc.Key("foobar/bar.js"), fsrc.Require("foobar.js"), fsrc.Use("foobar/foo.js")},
	)
	// Files not matching the include patterns must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# notes\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := ScanDir(context.Background(), dir)
	if err != nil {
		t.Fatal(err)
	}
	// Lexical walk order: top-level files sort after the foobar directory.
	want := keys("foobar/bar.js", "foobar/foo.js", "foobar.js")
	if diff := cmp.Diff(want, fileKeys(files)); diff != "" {
		t.Errorf("scanned keys differ from expected (-want, +got):\n%s", diff)
	}

	g := BuildGraph(files)
	order, err := Resolve(g)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(keys("foobar.js", "foobar/bar.js", "foobar/foo.js"), order); diff != "" {
		t.Errorf("resolved order differs from expected (-want, +got):\n%s", diff)
	}
}

func TestScanDirPatterns(t *testing.T) {
	t.Parallel()
	dir := fsrc.Dir(t,
		[]fsrc.Option{fsrc.Key("keep.js")},
		[]fsrc.Option{fsrc.Key("skip.js")},
		[]fsrc.Option{fsrc.Key("lib/keep.js")},
	)

	testCases := []struct {
		desc string
		opts []ScanOption
		want []ModuleKey
	}{
		{
			desc: "default includes every .js file",
			want: keys("keep.js", "lib/keep.js", "skip.js"),
		},
		{
			desc: "excludes win over includes",
			opts: []ScanOption{WithExcludes("skip.js")},
			want: keys("keep.js", "lib/keep.js"),
		},
		{
			desc: "include pattern on the relative path",
			opts: []ScanOption{WithIncludes("lib/*.js")},
			want: keys("lib/keep.js"),
		},
		{
			desc: "bare include pattern matches base names anywhere",
			opts: []ScanOption{WithIncludes("keep.js")},
			want: keys("keep.js", "lib/keep.js"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			files, err := ScanDir(context.Background(), dir, tc.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, fileKeys(files)); diff != "" {
				t.Errorf("scanned keys differ from expected (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScanDirMissing(t *testing.T) {
	t.Parallel()
	if _, err := ScanDir(context.Background(), filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("got nil error scanning a missing directory, want an error")
	}
}
