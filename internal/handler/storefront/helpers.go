package storefront

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/stridewear/storefront/internal/domain"
)

// parseFilterSpec binds catalog query parameters.
//
//	category=cat1&category=cat2  membership filters (repeat or comma-separate)
//	brand=brand1
//	price_min=5999&price_max=12999  inclusive bounds, in cents
//	on_sale=true
//	sort=price_asc
//	page=2&page_size=24
func parseFilterSpec(values url.Values) (domain.FilterSpec, error) {
	spec := domain.FilterSpec{
		CategoryIDs: splitParam(values["category"]),
		BrandIDs:    splitParam(values["brand"]),
		OnSaleOnly:  values.Get("on_sale") == "true" || values.Get("on_sale") == "1",
		Sort:        domain.SortKey(values.Get("sort")),
	}

	var err error
	if spec.PriceMinCents, err = parseInt64Param(values, "price_min"); err != nil {
		return spec, err
	}
	if spec.PriceMaxCents, err = parseInt64Param(values, "price_max"); err != nil {
		return spec, err
	}
	if spec.Page, err = parseIntParam(values, "page"); err != nil {
		return spec, err
	}
	if spec.PageSize, err = parseIntParam(values, "page_size"); err != nil {
		return spec, err
	}

	return spec, nil
}

// splitParam flattens repeated params and comma-separated values into
// one list, dropping empties.
func splitParam(raw []string) []string {
	var out []string
	for _, v := range raw {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func parseIntParam(values url.Values, name string) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.Invalid("query.parse", name+" must be an integer")
	}
	return n, nil
}

func parseInt64Param(values url.Values, name string) (int64, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.Invalid("query.parse", name+" must be an integer")
	}
	return n, nil
}

// decodeJSON decodes a request body into dst, rejecting unknown fields
// and trailing garbage.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid("body.decode", "invalid JSON request body")
	}
	if dec.More() {
		return domain.Invalid("body.decode", "request body must contain a single JSON object")
	}
	_, _ = io.Copy(io.Discard, r.Body)
	return nil
}
