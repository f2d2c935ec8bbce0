package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"eaglesounds.in/internal/carousel"
	"eaglesounds.in/internal/config"
	"eaglesounds.in/internal/effects"
	"eaglesounds.in/internal/metrics"
	"eaglesounds.in/internal/models"
	"eaglesounds.in/internal/services"
)

const (
	writeWait  = 5 * time.Second
	maxMessage = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// carouselCommand is the incoming carousel socket message
type carouselCommand struct {
	Action string `json:"action"` // "next", "prev" or "goto"
	Index  int    `json:"index"`
}

// liveError is sent back when a command cannot be applied
type liveError struct {
	Error string `json:"error"`
}

// LiveHandler streams the carousel and smoke effects over websockets.
// Every connection owns its own controller or simulator, torn down when the
// socket closes.
type LiveHandler struct {
	slideService *services.SlideService
	cfg          *config.Config
	log          zerolog.Logger
}

// NewLiveHandler creates a new LiveHandler
func NewLiveHandler(ss *services.SlideService, cfg *config.Config, log zerolog.Logger) *LiveHandler {
	return &LiveHandler{
		slideService: ss,
		cfg:          cfg,
		log:          log.With().Str("component", "live").Logger(),
	}
}

// Carousel handles GET /ws/carousel
func (h *LiveHandler) Carousel(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("carousel upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessage)

	log := h.log.With().Str("session", uuid.NewString()).Str("stream", "carousel").Logger()
	metrics.LiveSessions.WithLabelValues("carousel").Inc()
	defer metrics.LiveSessions.WithLabelValues("carousel").Dec()

	// The writer only needs the latest state, so a slow socket never blocks
	// the controller
	states := make(chan carousel.State, 1)
	instant := h.cfg.Carousel.TransitionDuration == 0
	ctrl, err := carousel.New(h.slideService.GetAll(), carousel.Options{
		AutoPlayInterval:   h.cfg.Carousel.AutoPlayInterval,
		TransitionDuration: h.cfg.Carousel.TransitionDuration,
		OnChange: func(s carousel.State) {
			// Every change starts a transition unless transitions are instant
			if s.Transitioning || instant {
				metrics.CarouselTransitions.Inc()
			}
			pushLatest(states, s)
		},
	})
	if err != nil {
		writeJSON(conn, liveError{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ctrl.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		defer cancel()
		initial := ctrl.State()
		if writeJSON(conn, initial) != nil {
			return
		}
		sent := initial.Version
		for {
			select {
			case <-ctx.Done():
				return
			case s := <-states:
				if s.Version <= sent {
					continue
				}
				if writeJSON(conn, s) != nil {
					return
				}
				sent = s.Version
			}
		}
	}()

	log.Debug().Msg("carousel connected")

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("carousel read")
			}
			break
		}

		var cmd carouselCommand
		if err := json.Unmarshal(msg, &cmd); err != nil {
			log.Debug().Err(err).Msg("carousel: bad command")
			continue
		}

		switch cmd.Action {
		case "goto":
			if _, err := ctrl.JumpTo(cmd.Index); err != nil {
				log.Debug().Err(err).Int("index", cmd.Index).Msg("carousel: jump rejected")
			}
		default:
			dir, ok := carousel.ParseDirection(cmd.Action)
			if !ok {
				log.Debug().Str("action", cmd.Action).Msg("carousel: unknown action")
				continue
			}
			ctrl.Advance(dir)
		}
	}

	cancel()
	<-writerDone
	log.Debug().Msg("carousel disconnected")
}

// Smoke handles GET /ws/smoke?width&height&seed
func (h *LiveHandler) Smoke(w http.ResponseWriter, r *http.Request) {
	width := clamp(parseIntParam(r, "width", models.DefaultViewport.Width), 100, 7680)
	height := clamp(parseIntParam(r, "height", models.DefaultViewport.Height), 100, 4320)
	seed, err := parseSeed(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid seed")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("smoke upgrade")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessage)

	log := h.log.With().Str("session", uuid.NewString()).Str("stream", "smoke").Logger()
	metrics.LiveSessions.WithLabelValues("smoke").Inc()
	defer metrics.LiveSessions.WithLabelValues("smoke").Dec()

	sim := effects.NewSmokeSimulator(effects.DefaultSmokeConfig(), models.Viewport{Width: width, Height: height}, effects.NewRNG(seed))
	anim := effects.NewAnimator(sim, h.cfg.Smoke.FrameRate)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader: resize messages, and cancellation when the client goes away
	go func() {
		defer cancel()
		for {
			var v models.Viewport
			if err := conn.ReadJSON(&v); err != nil {
				return
			}
			if v.Width > 0 && v.Height > 0 {
				anim.Resize(models.Viewport{
					Width:  clamp(v.Width, 100, 7680),
					Height: clamp(v.Height, 100, 4320),
				})
			}
		}
	}()

	log.Debug().Int("width", width).Int("height", height).Msg("smoke connected")

	sent := 0
	maxFrames := h.cfg.Smoke.MaxFrames
	err = anim.Run(ctx, func(f effects.Frame) error {
		if err := writeJSON(conn, f); err != nil {
			return err
		}
		metrics.FramesSent.Inc()
		sent++
		if maxFrames > 0 && sent >= maxFrames {
			cancel()
		}
		return nil
	})
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		log.Debug().Err(err).Msg("smoke stream ended")
	}

	if maxFrames > 0 && sent >= maxFrames {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "frame limit reached"),
			time.Now().Add(writeWait))
	}
	log.Debug().Int("frames", sent).Msg("smoke disconnected")
}

// writeJSON writes one message with a deadline
func writeJSON(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

// pushLatest leaves the highest Version of s and any pending state in ch.
// Notifications race between the transition timer and the reader, so an
// older state may arrive after a newer one.
func pushLatest(ch chan carousel.State, s carousel.State) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case pending := <-ch:
			if pending.Version > s.Version {
				s = pending
			}
		default:
		}
	}
}
