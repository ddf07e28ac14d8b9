package network

import (
	"bytes"
	"io"
	"net/http"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/model"
	"github.com/ratel-online/uno/service"
)

const maxRequestBody = 16 << 10

// Http serves the JSON API used by the browser front end. Requests act for
// the human seat unless a seat query parameter says otherwise.
type Http struct {
	addr string
	svc  *service.Service
}

type errorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func NewHttpServer(addr string, svc *service.Service) Http {
	return Http{addr: addr, svc: svc}
}

func (h Http) Serve() error {
	log.Infof("Http server listening on %s\n", h.addr)
	return http.ListenAndServe(h.addr, h.Handler())
}

func (h Http) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/gamestate", h.route(http.MethodGet, consts.ActionState))
	mux.HandleFunc("/api/new_game", h.route(http.MethodPost, consts.ActionNew))
	mux.HandleFunc("/api/draw_card", h.route(http.MethodPost, consts.ActionDraw))
	mux.HandleFunc("/api/play_card", h.route(http.MethodPost, consts.ActionPlay))
	mux.HandleFunc("/api/choose_color", h.route(http.MethodPost, consts.ActionColor))
	mux.HandleFunc("/api/end_turn", h.route(http.MethodPost, consts.ActionEnd))
	return mux
}

func (h Http) route(method string, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			writeJSON(w, http.StatusMethodNotAllowed, errorBody{
				Code:  consts.CodeInputInvalid,
				Error: r.Method + " not allowed, use " + method,
			})
			return
		}
		req := model.Req{}
		if method == http.MethodPost {
			if err := readJSON(r.Body, &req); err != nil {
				writeJSON(w, http.StatusBadRequest, errorBody{
					Code:  consts.CodeInputInvalid,
					Error: consts.ErrorsInputInvalid.Detail("%v", err).Error(),
				})
				return
			}
		}
		req.Action = action
		if seat := r.URL.Query().Get("seat"); seat != "" {
			req.Seat = seat
		}

		resp := h.svc.Handle(r.Context(), req)
		if resp.Code != consts.CodeOK {
			writeJSON(w, statusOf(resp.Code), errorBody{Code: resp.Code, Error: resp.Msg})
			return
		}
		writeJSON(w, http.StatusOK, resp.Data)
	}
}

func statusOf(code int) int {
	switch code {
	case consts.CodeInputInvalid, consts.CodeUnknownSeat:
		return http.StatusBadRequest
	case consts.CodeIllegalMove:
		return http.StatusUnprocessableEntity
	case consts.CodeNotStarted, consts.CodeOutOfTurn, consts.CodeBlockedByPendingChoice,
		consts.CodeGameOver, consts.CodeSeatTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// readJSON decodes a request body into v. An empty body leaves v untouched.
func readJSON(body io.Reader, v interface{}) error {
	data, err := io.ReadAll(io.LimitReader(body, maxRequestBody))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(json.Marshal(body)); err != nil {
		log.Error(err)
	}
}
