// Package xml renders results as an XML document
package xml

import (
	"fmt"
	"io"
	"sort"

	"github.com/arthur-debert/almanac/pkg/errors"
	"github.com/arthur-debert/almanac/pkg/ui/display"
	"github.com/beevik/etree"
)

// Renderer writes one <almanac> document per call
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func newDocument() (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc, doc.CreateElement("almanac")
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	if _, err := doc.WriteTo(r.output); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to write xml")
	}
	return nil
}

// RenderResult renders a result as <almanac kind="..."> with <field> and
// <table> children
func (r *Renderer) RenderResult(result interface{}) error {
	d, err := display.FromResult(result)
	if err != nil {
		return err
	}

	doc, root := newDocument()
	root.CreateAttr("kind", d.Kind)
	root.CreateAttr("title", d.Title)

	for _, f := range d.Fields {
		el := root.CreateElement("field")
		el.CreateAttr("name", f.Key)
		if f.Highlight {
			el.CreateAttr("highlight", "true")
		}
		el.SetText(f.Value)
	}

	for _, t := range d.Tables {
		tbl := root.CreateElement("table")
		tbl.CreateAttr("title", t.Title)
		for _, row := range t.Rows {
			rowEl := tbl.CreateElement("row")
			for i, cell := range row {
				c := rowEl.CreateElement("cell")
				if i < len(t.Headers) {
					c.CreateAttr("name", t.Headers[i])
				}
				c.SetText(cell)
			}
		}
	}

	return r.write(doc)
}

// RenderError renders <almanac><error code="..."> with one <detail> per entry
func (r *Renderer) RenderError(err error) error {
	doc, root := newDocument()
	el := root.CreateElement("error")
	el.CreateAttr("code", string(errors.GetErrorCode(err)))
	el.CreateElement("message").SetText(err.Error())

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d := el.CreateElement("detail")
		d.CreateAttr("name", k)
		d.SetText(fmt.Sprint(details[k]))
	}

	return r.write(doc)
}

// RenderMessage renders <almanac><message>
func (r *Renderer) RenderMessage(msg string) error {
	doc, root := newDocument()
	root.CreateElement("message").SetText(msg)
	return r.write(doc)
}
