package player

import (
	"bytes"
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/model"
	"github.com/ratel-online/uno/uno/game"
)

// maxDecisionBody caps how much of a decision service reply is read.
const maxDecisionBody = 64 << 10

// strict rejects decision payloads carrying fields the schema does not know.
var strict = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	DisallowUnknownFields:  true,
}.Froze()

// remotePlayer asks an external decision service over HTTP.
type remotePlayer struct {
	url    string
	client *http.Client
}

func NewRemotePlayer(url string, client *http.Client) game.Decider {
	if client == nil {
		client = http.DefaultClient
	}
	return remotePlayer{url: url, client: client}
}

func (p remotePlayer) Decide(ctx context.Context, state game.State) (game.Decision, error) {
	body := json.Marshal(model.NewDecisionRequest(state))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, consts.ErrorsDecisionInvalid.Detail("decision service answered %s", resp.Status)
	}

	var payload model.DecisionResponse
	if err := strict.NewDecoder(io.LimitReader(resp.Body, maxDecisionBody)).Decode(&payload); err != nil {
		return nil, consts.ErrorsDecisionInvalid.Detail("%v", err)
	}
	return payload.Decision()
}
