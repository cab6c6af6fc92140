package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountAddedLines(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want int
	}{
		{
			name: "empty diff",
			diff: "",
			want: 0,
		},
		{
			name: "simple addition",
			diff: `diff --git a/file.txt b/file.txt
index 123..456
--- a/file.txt
+++ b/file.txt
@@ -1,3 +1,4 @@
 line 1
 line 2
+line 3
 line 4`,
			want: 1,
		},
		{
			name: "deletions are not counted",
			diff: `diff --git a/file.txt b/file.txt
--- a/file.txt
+++ b/file.txt
@@ -1,4 +1,3 @@
 line 1
-line 3
 line 4`,
			want: 0,
		},
		{
			name: "bare plus lines are not counted",
			diff: `--- a/file.py
+++ b/file.py
@@ -1,2 +1,5 @@
 def hello():
+
+    print("new")
+
+    return True`,
			want: 2,
		},
		{
			name: "multiple files",
			diff: `diff --git a/a.go b/a.go
--- a/a.go
+++ b/a.go
@@ -1 +1,2 @@
 package a
+var x = 1
diff --git a/b.go b/b.go
new file mode 100644
--- /dev/null
+++ b/b.go
@@ -0,0 +1,3 @@
+package b
+
+func B() {}`,
			want: 3,
		},
		{
			name: "content starting with ++ looks like a header",
			diff: `+++ b/main.c
+++i;
+i++;`,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountAddedLines(tt.diff))
		})
	}
}

func TestSanitize(t *testing.T) {
	raw := []byte("\xff\xfec\x00o\x00m\x00mit abc\r\n")
	assert.Equal(t, "commit abc\n", sanitize(raw))
}
