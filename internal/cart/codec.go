package cart

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ytget/storefront/internal/model"
)

// ErrMalformedPayload is reported when a stored cart is not an array
var ErrMalformedPayload = errors.New("malformed cart payload")

const (
	payloadSchemaURL = "https://storefront.schemas.local/cart.schema.json"
	itemSchemaURL    = "https://storefront.schemas.local/cart-item.schema.json"
)

const payloadSchema = `{"type": "array"}`

const itemSchema = `{
	"type": "object",
	"required": ["id"],
	"properties": {
		"id": {"type": "string"},
		"name": {"type": "string"},
		"images": {"type": ["array", "null"], "items": {"type": "string"}}
	}
}`

var (
	compiledPayload = mustCompileSchema(payloadSchemaURL, payloadSchema)
	compiledItem    = mustCompileSchema(itemSchemaURL, itemSchema)
)

func mustCompileSchema(url, schema string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(url, strings.NewReader(schema)); err != nil {
		panic(err)
	}
	return c.MustCompile(url)
}

// Encode serializes the full collection. A nil collection encodes as [].
func Encode(items []model.CartLineItem) ([]byte, error) {
	if items == nil {
		items = []model.CartLineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "encode cart")
	}
	return data, nil
}

// Decode parses a stored collection. Only a payload that is not an array
// yields ErrMalformedPayload. Elements that are not well-formed line items
// are kept, with whatever id, name and images can be read from them, so the
// stored count survives.
func Decode(data []byte) ([]model.CartLineItem, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrMalformedPayload, "parse: %v", err)
	}
	if err := compiledPayload.Validate(doc); err != nil {
		return nil, errors.Wrapf(ErrMalformedPayload, "validate: %v", err)
	}

	elems := doc.([]any)
	items := make([]model.CartLineItem, 0, len(elems))
	for _, elem := range elems {
		if compiledItem.Validate(elem) == nil {
			items = append(items, strictItem(elem.(map[string]any)))
			continue
		}
		items = append(items, looseItem(elem))
	}
	return items, nil
}

func strictItem(obj map[string]any) model.CartLineItem {
	item := model.CartLineItem{ID: obj["id"].(string)}
	item.Name, _ = obj["name"].(string)
	item.Images = stringsOf(obj["images"])
	return item
}

// looseItem salvages what it can from an element that failed validation
func looseItem(elem any) model.CartLineItem {
	obj, ok := elem.(map[string]any)
	if !ok {
		return model.CartLineItem{}
	}
	var item model.CartLineItem
	switch id := obj["id"].(type) {
	case string:
		item.ID = id
	case json.Number:
		item.ID = id.String()
	case bool:
		item.ID = strconv.FormatBool(id)
	}
	item.Name, _ = obj["name"].(string)
	item.Images = stringsOf(obj["images"])
	return item
}

func stringsOf(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
