package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"revclone/internal/cloner"
	"revclone/internal/config"
	"revclone/internal/listingcache"
	"revclone/internal/observability"
	"revclone/internal/refsource"
	"revclone/internal/reverb"
)

// go run cmd/cloner/main.go -ship=123456 -urls="https://reverb.com/item/111, https://reverb.com/item/222"
// go run cmd/cloner/main.go -ship=123456 -file=urls.txt
// go run cmd/cloner/main.go -ship=123456 -html=pagina_salva.html
func main() {
	token := flag.String("token", "", "Token da API do Reverb (ou REVERB_API_TOKEN)")
	ship := flag.Int("ship", 0, "Shipping profile id da conta de destino (ou SHIPPING_PROFILE_ID)")
	urls := flag.String("urls", "", "URLs dos anúncios separadas por vírgula ou quebra de linha")
	file := flag.String("file", "", "Arquivo texto com as URLs")
	html := flag.String("html", "", "Página HTML salva do Reverb para extrair os links")
	flag.Parse()

	cfg := config.Load()
	if *token == "" {
		*token = cfg.APIToken
	}
	if *ship == 0 {
		*ship = cfg.ShippingProfileID
	}
	if *token == "" || *ship == 0 {
		log.Fatal("Informe -token e -ship (ou REVERB_API_TOKEN e SHIPPING_PROFILE_ID)")
	}

	refs, err := collectReferences(*urls, *file, *html)
	if err != nil {
		log.Fatalf("Erro ao ler as referências: %v", err)
	}
	if len(refs) == 0 {
		log.Fatal("Nenhuma referência informada")
	}

	observability.Start(cfg.MetricsPort)

	client := reverb.NewClient(cfg.BaseURL, *token)

	var fetcher cloner.Fetcher = &cloner.APIFetcher{Client: client}
	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		fetcher = &listingcache.CachedFetcher{Client: redisClient, Next: fetcher}
	}

	batch := &cloner.Batch{
		Fetcher: fetcher,
		Publisher: &cloner.Publisher{
			Client:       client,
			PublishDelay: time.Duration(cfg.PublishDelaySeconds) * time.Second,
		},
		ItemDelay: time.Duration(cfg.ItemDelaySeconds) * time.Second,
		OnProgress: func(done, total int) {
			fmt.Printf("Progresso: %d/%d\n", done, total)
		},
	}

	outcomes := batch.Run(cloner.Request{
		ShippingProfileID: *ship,
		References:        refs,
	})

	succeeded := 0
	for _, out := range outcomes {
		switch out.Status {
		case cloner.StatusSucceeded:
			succeeded++
			fmt.Printf("✅ %s -> novo anúncio %s publicado (EUR)\n", out.Reference, out.NewID)
		case cloner.StatusPublishFailed:
			fmt.Printf("⚠️  %s -> criado como %s mas não publicado: %s\n", out.Reference, out.NewID, out.Message)
		default:
			fmt.Printf("❌ %s -> %s: %s\n", out.Reference, out.Status, out.Message)
		}
	}

	log.Printf("Batch finalizado: %d/%d publicados", succeeded, len(outcomes))
}

func collectReferences(urls, file, html string) ([]string, error) {
	if html != "" {
		f, err := os.Open(html)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return refsource.FromHTML(f)
	}
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return cloner.SplitReferences(string(b)), nil
	}
	return cloner.SplitReferences(urls), nil
}
