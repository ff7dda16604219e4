package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	appcatalog "github.com/jhoicas/catalogo-industrial/internal/application/catalog"
	"github.com/jhoicas/catalogo-industrial/internal/domain"
	"github.com/jhoicas/catalogo-industrial/internal/domain/sku"
)

var _ appcatalog.RowReader = (*TecomFeedReader)(nil)

// TecomFeedReader lee la lista de precios XML de Tecom:
//
//	<pricelist supplier="tecom">
//	  <article code="C020080271">
//	    <name>…</name><description>…</description><brand>…</brand>
//	    <category>C</category><subcategory>Side guide accessories</subcategory>
//	    <price>1200.50</price><unit>94</unit><image>https://…</image>
//	    <attribute name="material">POM</attribute>
//	  </article>
//	</pricelist>
//
// El SKU interno no viene en el feed; se deriva del atributo code al importar.
type TecomFeedReader struct {
	name string
	r    io.Reader
}

// NewTecomFeedReader construye el lector.
func NewTecomFeedReader(name string, r io.Reader) *TecomFeedReader {
	return &TecomFeedReader{name: name, r: r}
}

// Source nombre del feed.
func (t *TecomFeedReader) Source() string { return t.name }

// ReadRows devuelve un ImportRow por <article>; Row es la posición del artículo (desde 1).
func (t *TecomFeedReader) ReadRows(ctx context.Context) ([]appcatalog.ImportRow, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(t.r); err != nil {
		return nil, fmt.Errorf("%w: parsear feed Tecom: %w", domain.ErrInvalidInput, err)
	}
	root := doc.SelectElement("pricelist")
	if root == nil {
		return nil, fmt.Errorf("%w: feed Tecom sin elemento <pricelist>", domain.ErrInvalidInput)
	}

	articles := root.SelectElements("article")
	out := make([]appcatalog.ImportRow, 0, len(articles))
	for i, art := range articles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row := appcatalog.ImportRow{
			Row:          i + 1,
			Supplier:     sku.SupplierTecom,
			SupplierSKU:  strings.TrimSpace(art.SelectAttrValue("code", "")),
			Name:         childText(art, "name"),
			Description:  childText(art, "description"),
			Brand:        childText(art, "brand"),
			CategoryCode: childText(art, "category"),
			SubCategory:  childText(art, "subcategory"),
			UnitMeasure:  childText(art, "unit"),
			ImageURL:     childText(art, "image"),
		}
		price, err := parsePrice(childText(art, "price"))
		if err != nil {
			row.ParseErr = err
		}
		row.Price = price
		if attrs := articleAttributes(art); attrs != nil {
			row.Attributes = attrs
		}
		out = append(out, row)
	}
	return out, nil
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// articleAttributes convierte los <attribute name="…"> en un objeto JSON.
func articleAttributes(art *etree.Element) json.RawMessage {
	attrs := art.SelectElements("attribute")
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		name := strings.TrimSpace(a.SelectAttrValue("name", ""))
		if name == "" {
			continue
		}
		m[name] = strings.TrimSpace(a.Text())
	}
	if len(m) == 0 {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return raw
}
