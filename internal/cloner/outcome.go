package cloner

// Status é o estado terminal de um item dentro do batch. Cada passo do
// pipeline tem a sua falha própria; PublishFailed é o único parcial, o
// anúncio existe como rascunho e pode ser publicado manualmente.
type Status string

const (
	StatusParseFailed   Status = "parse_failed"
	StatusFetchFailed   Status = "fetch_failed"
	StatusCreateFailed  Status = "create_failed"
	StatusPublishFailed Status = "created_not_published"
	StatusSucceeded     Status = "succeeded"
)

// Outcome é o resultado de um item. ListingID e NewID ficam vazios nos
// estágios em que ainda não existiam.
type Outcome struct {
	Reference string
	ListingID string
	NewID     string
	Status    Status
	Message   string
}
