package handler

import (
	"encoding/xml"
	"net/http"
	"time"

	"threadline/internal/registry"
	"threadline/pkg/response"
	"threadline/pkg/slug"

	"github.com/labstack/echo/v4"
)

type SitemapHandler struct {
	baseURL string
}

func NewSitemapHandler(baseURL string) *SitemapHandler {
	return &SitemapHandler{
		baseURL: baseURL,
	}
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// GetSitemap serves the static XML sitemap: fixed category URLs plus the
// build-time demo brand and product tables.
func (h *SitemapHandler) GetSitemap(c echo.Context) error {
	now := time.Now().UTC().Format(time.RFC3339)

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	set.URLs = append(set.URLs, sitemapURL{
		Loc:        h.baseURL + "/",
		LastMod:    now,
		ChangeFreq: "daily",
		Priority:   "1.0",
	})

	for _, category := range registry.Categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + "/" + category,
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	for _, brand := range sitemapBrands {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + "/brand/" + brand.ID,
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	for _, brand := range sitemapBrands {
		for _, product := range brand.Products {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        h.baseURL + "/product/" + brand.ID + "/" + slug.Make(product.Title, product.Model),
				LastMod:    now,
				ChangeFreq: "monthly",
				Priority:   "0.6",
			})
		}
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return response.Error(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600, s-maxage=3600")
	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
}
