package cli

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
)

// printer writes match results as text or JSON lines.
type printer struct {
	w        *bufio.Writer
	enc      *json.Encoder
	withFile bool
	withLine bool
}

type lineRecord struct {
	File  string `json:"file,omitempty"`
	Line  int    `json:"line"`
	Text  string `json:"text"`
	Start *int   `json:"start,omitempty"`
	End   *int   `json:"end,omitempty"`
}

type countRecord struct {
	File  string `json:"file,omitempty"`
	Count int    `json:"count"`
}

type pathRecord struct {
	Path string `json:"path"`
}

func newPrinter(w io.Writer, asJSON, withFile, withLine bool) *printer {
	p := &printer{w: bufio.NewWriter(w), withFile: withFile, withLine: withLine}
	if asJSON {
		p.enc = json.NewEncoder(p.w)
	}
	return p
}

func (p *printer) prefix(file string, n int) {
	if p.withFile {
		p.w.WriteString(file)
		p.w.WriteByte(':')
	}
	if p.withLine {
		p.w.WriteString(strconv.Itoa(n))
		p.w.WriteByte(':')
	}
}

// line prints a whole matching line.
func (p *printer) line(file string, n int, text []byte) error {
	if p.enc != nil {
		return p.enc.Encode(lineRecord{File: p.file(file), Line: n, Text: string(text)})
	}
	p.prefix(file, n)
	p.w.Write(text)
	return p.w.WriteByte('\n')
}

// match prints the matched part of a line.
func (p *printer) match(file string, n int, text []byte, s span) error {
	if p.enc != nil {
		return p.enc.Encode(lineRecord{
			File:  p.file(file),
			Line:  n,
			Text:  string(text[s.start:s.end]),
			Start: &s.start,
			End:   &s.end,
		})
	}
	p.prefix(file, n)
	p.w.Write(text[s.start:s.end])
	return p.w.WriteByte('\n')
}

// count prints the number of matching lines in a file.
func (p *printer) count(file string, count int) error {
	if p.enc != nil {
		return p.enc.Encode(countRecord{File: p.file(file), Count: count})
	}
	if p.withFile {
		p.w.WriteString(file)
		p.w.WriteByte(':')
	}
	p.w.WriteString(strconv.Itoa(count))
	return p.w.WriteByte('\n')
}

// path prints one file-name search result.
func (p *printer) path(path string) error {
	if p.enc != nil {
		return p.enc.Encode(pathRecord{Path: path})
	}
	p.w.WriteString(path)
	return p.w.WriteByte('\n')
}

func (p *printer) file(file string) string {
	if p.withFile {
		return file
	}
	return ""
}

func (p *printer) flush() error {
	return p.w.Flush()
}
