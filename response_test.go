package tinyhttp

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func runBody(t *testing.T, res *Response) string {
	t.Helper()
	if res.Body == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := res.Body(&buf); err != nil {
		t.Fatalf("body writer: %v", err)
	}
	return buf.String()
}

func TestText(t *testing.T) {
	res := Text("Test")
	if res.Status != 200 {
		t.Errorf("Got status %d, want 200", res.Status)
	}
	ExpectEqual(t, "text/plain", res.ContentType)
	ExpectEqual(t, "Test", runBody(t, res))
}

func TestTextEmptyBody(t *testing.T) {
	res := Text("")
	if res.Status != 200 {
		t.Errorf("Got status %d, want 200", res.Status)
	}
	if res.Body != nil {
		t.Errorf("Empty text should set no body writer")
	}
}

func TestTextAsEncoding(t *testing.T) {
	res := TextAs("héllo", "text/plain; charset=iso-8859-1", charmap.ISO8859_1)
	body := runBody(t, res)
	if len(body) != 5 {
		t.Fatalf("Got %d body bytes, want 5", len(body))
	}
	if body[1] != 0xe9 {
		t.Errorf("Got byte %#x, want 0xe9", body[1])
	}
}

func TestHTML(t *testing.T) {
	res := HTML("<p>hi</p>")
	if res.Status != 200 {
		t.Errorf("Got status %d, want 200", res.Status)
	}
	ExpectEqual(t, "text/html", res.ContentType)
	ExpectEqual(t, "<p>hi</p>", runBody(t, res))
}

func TestRedirect(t *testing.T) {
	cases := []struct {
		res    *Response
		status int
	}{
		{Redirect("/target"), 303},
		{RedirectPermanent("/target"), 301},
		{RedirectTemporary("/target"), 307},
	}
	for _, c := range cases {
		if c.res.Status != c.status {
			t.Errorf("Got status %d, want %d", c.res.Status, c.status)
		}
		ExpectEqual(t, "/target", c.res.Header["location"])
		ExpectEqual(t, "text/html", c.res.ContentType)
		if c.res.Body != nil {
			t.Errorf("Redirect should have an empty body")
		}
	}
}

func TestNotFound(t *testing.T) {
	res := NotFound()
	if res.Status != 404 {
		t.Errorf("Got status %d, want 404", res.Status)
	}
	ExpectEqual(t, "text/html", res.ContentType)
	if res.Body != nil {
		t.Errorf("NotFound should have no body")
	}

	ExpectEqual(t, "application/json", NotFoundAs("application/json").ContentType)
}

func TestServeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	if err := os.WriteFile(path, []byte("hi there"), 0644); err != nil {
		t.Fatalf("error: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("error: %v", err)
	}

	res := ServeFile(dir, "hello.txt")
	if res.Status != 200 {
		t.Fatalf("Got status %d, want 200", res.Status)
	}
	ExpectEqual(t, "text/plain", res.ContentType)
	ExpectEqual(t, `"`+strconv.FormatInt(fi.ModTime().UnixNano(), 16)+`"`, res.Header["etag"])
	ExpectEqual(t, fi.ModTime().UTC().Format(rfc1123GMT), res.Header["last-modified"])
	ExpectEqual(t, "hi there", runBody(t, res))
}

func TestServeFileContentTypeOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "data.bin"), []byte{1, 2, 3}, 0644); err != nil {
		t.Fatalf("error: %v", err)
	}
	res := ServeFileAs(dir, "data.bin", "application/x-custom")
	if res.Status != 200 {
		t.Fatalf("Got status %d, want 200", res.Status)
	}
	ExpectEqual(t, "application/x-custom", res.ContentType)
}

func TestServeFileNotFoundVariants(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "real.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("error: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.d"), 0755); err != nil {
		t.Fatalf("error: %v", err)
	}

	cases := []string{
		"missing.txt",    // nonexistent
		"real",           // no extension
		"../escape.txt",  // outside the base directory
		"../../etc.conf", // outside the base directory
		"sub.d",          // a directory
	}
	for _, name := range cases {
		res := ServeFile(dir, name)
		if res.Status != 404 {
			t.Errorf("ServeFile(%q): got status %d, want 404", name, res.Status)
		}
	}

	// the content-type override must not rescue an invalid path
	res := ServeFileAs(dir, "missing.txt", "text/plain")
	if res.Status != 404 {
		t.Errorf("Got status %d, want 404", res.Status)
	}
}
