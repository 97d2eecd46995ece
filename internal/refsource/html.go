package refsource

import (
	"io"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var itemHref = regexp.MustCompile(`item/\d+`)

// FromHTML extrai referências de anúncio de uma página salva do Reverb
// (busca, favoritos, loja). Devolve os hrefs que apontam para item/<id>,
// na ordem do documento; duplicatas ficam por conta do batch.
func FromHTML(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var refs []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if itemHref.MatchString(href) {
			refs = append(refs, href)
		}
	})

	return refs, nil
}
