// Package opensearch serves the OpenSearch description document that lets
// browsers discover the search and suggestions URL templates.
package opensearch

import "encoding/xml"

const xmlns = "http://a9.com/-/spec/opensearch/1.1/"
const mozXmlns = "http://www.mozilla.org/2006/browser/search/"

type urlEntry struct {
	Type     string `xml:"type,attr"`
	Template string `xml:"template,attr"`
}

// Describe renders the OpenSearch descriptor document for the given
// origin (scheme://host[:port], no trailing slash), shortName, and
// description.
func Describe(origin, shortName, description string) ([]byte, error) {
	doc := struct {
		XMLName       xml.Name `xml:"OpenSearchDescription"`
		Xmlns         string   `xml:"xmlns,attr"`
		MozXmlns      string   `xml:"xmlns:moz,attr"`
		ShortName     string   `xml:"ShortName"`
		Description   string   `xml:"Description"`
		InputEncoding string   `xml:"InputEncoding"`
		Image         string     `xml:"Image"`
		Urls          []urlEntry `xml:"Url"`
	}{
		Xmlns:         xmlns,
		MozXmlns:      mozXmlns,
		ShortName:     shortName,
		Description:   description,
		InputEncoding: "UTF-8",
		Image:         origin + "/favicon.ico",
		Urls: []urlEntry{
			{
				Type:     "text/html",
				Template: origin + "/search?q={searchTerms}",
			},
			{
				Type:     "application/x-suggestions+json",
				Template: origin + "/api/suggest?q={searchTerms}",
			},
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
