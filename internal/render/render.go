// Package render maps a picture's exposed selection to markup.
//
// Raster selections render as
//
//	<div class="picture ..."><img alt="..." src="..." itemprop="..." class="picture__image ..."/></div>
//
// and vector selections as an <object type="image/svg+xml"> inside the same
// wrapper. The img carries the picture__image--changed marker on the first
// render after the picture settled, and never again.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ironsheep/picture-mcp/internal/picture"
)

// Class names emitted by the renderer.
const (
	ClassPicture      = "picture"
	ClassImage        = "picture__image"
	ClassImageChanged = "picture__image--changed"
	ClassObject       = "picture__object"
)

// DefaultItemProp is the itemprop value used when Props.ItemProp is empty.
const DefaultItemProp = "image"

// Props are the presentation pass-throughs of a picture instance. The
// selection core never inspects them.
type Props struct {
	Alt             string   `json:"alt"`
	ClassName       []string `json:"class_name,omitempty"`
	ClassNameImage  string   `json:"class_name_image,omitempty"`
	ClassNameObject string   `json:"class_name_object,omitempty"`
	ItemProp        string   `json:"item_prop,omitempty"`
}

// Node builds the markup tree for st. settled requests the one-time
// picture__image--changed marker; it is ignored for vector selections.
func Node(st picture.State, settled bool, p Props) *html.Node {
	itemProp := p.ItemProp
	if itemProp == "" {
		itemProp = DefaultItemProp
	}

	wrapper := element(atom.Div, attr("class", classes(append([]string{ClassPicture}, p.ClassName...)...)))

	if st.Vector {
		wrapper.AppendChild(element(atom.Object,
			attr("type", picture.VectorMIME),
			attr("data", st.Candidate.URL),
			attr("itemprop", itemProp),
			attr("class", classes(ClassObject, p.ClassNameObject)),
		))
		return wrapper
	}

	imageClasses := []string{ClassImage}
	if settled {
		imageClasses = append(imageClasses, ClassImageChanged)
	}
	imageClasses = append(imageClasses, p.ClassNameImage)

	wrapper.AppendChild(element(atom.Img,
		attr("alt", p.Alt),
		attr("src", st.Candidate.URL),
		attr("itemprop", itemProp),
		attr("class", classes(imageClasses...)),
	))
	return wrapper
}

// Write renders st as HTML to w.
func Write(w io.Writer, st picture.State, settled bool, p Props) error {
	if err := html.Render(w, Node(st, settled, p)); err != nil {
		return fmt.Errorf("failed to render picture: %w", err)
	}
	return nil
}

// Markup renders the controller's current state. It consumes the
// controller's one-shot settled flag, so only the first call after the first
// fit carries the changed marker.
func Markup(c *picture.Controller, p Props) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c.State(), c.TakeSettled(), p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func classes(names ...string) string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return strings.Join(out, " ")
}
