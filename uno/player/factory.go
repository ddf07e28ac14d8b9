package player

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

// NewDecider builds the decider for strategy. url is only used by the
// remote strategy, whose HTTP client gives up after timeout.
func NewDecider(strategy string, url string, timeout time.Duration) (game.Decider, error) {
	switch strategy {
	case consts.StrategyNaive:
		return NewNaivePlayer(rand.New(rand.NewSource(time.Now().UnixNano()))), nil
	case consts.StrategyGood, "":
		return NewGoodPlayer(), nil
	case consts.StrategyRemote:
		if url == "" {
			return nil, consts.ErrorsDecisionInvalid.Detail("remote strategy needs a decision service url")
		}
		return NewRemotePlayer(url, &http.Client{Timeout: timeout}), nil
	default:
		return nil, consts.ErrorsDecisionInvalid.Detail("unknown strategy %q", strategy)
	}
}
