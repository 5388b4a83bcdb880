package domain

import "testing"

func TestPath_Extension(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantExt string
		wantOK  bool
	}{
		{name: "simple", path: "a.txt", wantExt: "txt", wantOK: true},
		{name: "nested", path: "dir/sub/report.PDF", wantExt: "PDF", wantOK: true},
		{name: "last dot wins", path: "archive.tar.gz", wantExt: "gz", wantOK: true},
		{name: "no dot", path: "Makefile", wantOK: false},
		{name: "dot file", path: "home/.bashrc", wantOK: false},
		{name: "trailing dot", path: "notes.", wantExt: "", wantOK: true},
		{name: "dot in directory only", path: "v1.2/README", wantOK: false},
		{name: "trailing separator", path: "dir/a.txt/", wantExt: "txt", wantOK: true},
		{name: "trailing current dir", path: "dir.d/.", wantExt: "d", wantOK: true},
		{name: "parent dir", path: "a.txt/..", wantOK: false},
		{name: "current dir", path: ".", wantOK: false},
		{name: "root", path: "/", wantOK: false},
		{name: "empty", path: "", wantOK: false},
		{name: "invalid utf8", path: "bad.\xff\xfe", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := NewPath(tt.path).Extension()
			if ok != tt.wantOK {
				t.Fatalf("Extension(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ext != tt.wantExt {
				t.Errorf("Extension(%q) = %q, want %q", tt.path, ext, tt.wantExt)
			}
		})
	}
}

func TestPath_Name(t *testing.T) {
	tests := []struct {
		path     string
		wantName string
		wantOK   bool
	}{
		{path: "a/b/c.txt", wantName: "c.txt", wantOK: true},
		{path: "./c", wantName: "c", wantOK: true},
		{path: "/abs//dir//", wantName: "dir", wantOK: true},
		{path: "..", wantOK: false},
		{path: "./.", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			name, ok := NewPath(tt.path).Name()
			if ok != tt.wantOK || name != tt.wantName {
				t.Errorf("Name(%q) = (%q, %v), want (%q, %v)", tt.path, name, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}
