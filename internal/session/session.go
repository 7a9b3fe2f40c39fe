package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rotmg-fleet/clientless/internal/config"
	"github.com/rotmg-fleet/clientless/internal/creds"
	"github.com/rotmg-fleet/clientless/internal/gametypes"
	"github.com/rotmg-fleet/clientless/internal/metrics"
	"github.com/rotmg-fleet/clientless/internal/protocol"
	"github.com/rotmg-fleet/clientless/internal/rc4"
	"github.com/rotmg-fleet/clientless/internal/transport"
)

// clientToken is the fixed token every Hello packet must carry.
const clientToken = "XTeP7hERdchV5jrBZEYNebAqDPU6tKU6"

const gameNet = "rotmg"

// Session is one account's client: connection state, simulated movement,
// and the handlers that keep it in sync with the server's tick cadence.
type Session struct {
	account  config.Account
	settings *config.Settings
	operator string
	log      *zap.Logger

	phase    Phase
	objectID int32
	ign      string
	currentMap string

	movement Movement
	time     TimeKeeper
	recon    ReconnectBase
	stats    StatBase
	combat   CombatBase
	goods    TradeBase
	objects  GameObjects

	cipher *rc4.Pair

	worker  *transport.Worker
	limiter *rate.Limiter
}

// New builds a session for one account. operatorName gates the chat-command
// console — only Text packets from that in-game name are parsed as
// commands.
func New(account config.Account, settings *config.Settings, operatorName string, log *zap.Logger) *Session {
	return &Session{
		account:  account,
		settings: settings,
		operator: operatorName,
		log:      log.With(zap.String("account", account.Email)),
		phase:    Disconnected,
		objectID: -1,
		movement: newMovement(),
		time:     newTimeKeeper(),
		recon:    newReconnectBase(account.ServerIP),
		stats:    newStatBase(),
		objects:  newGameObjects(),
		cipher:   rc4.NewPair(),
		limiter:  rate.NewLimiter(rate.Limit(5), 10),
	}
}

// Phase reports the session's current lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Run drives the session's full lifecycle until ctx is canceled or the
// session reaches Dead. It mirrors the original client's game_loop: connect,
// pump inbound frames, and on transport failure enter ReconnectPending
// with backoff, retrying until the reconnect budget is exhausted.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if s.phase == ReconnectPending {
			if s.recon.Exhausted() {
				s.phase = Dead
				s.log.Warn("reconnect budget exhausted, killing session")
				return fmt.Errorf("session: reconnect attempts exhausted")
			}
			wait := time.Duration(s.settings.ThreadDelayMs) * time.Millisecond * time.Duration(s.recon.WaitMultiplier)
			s.log.Info("waiting before reconnect", zap.Duration("wait", wait), zap.Uint32("attempts", s.recon.Attempts))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return ctx.Err()
			}
			s.clearHeaps()
			s.cipher.Reset()
		}

		s.phase = Connecting
		if err := s.connect(ctx); err != nil {
			s.log.Warn("connect failed", zap.Error(err))
			s.recon.Increment(true)
			metrics.ReconnectsTotal.Inc()
			s.phase = ReconnectPending
			continue
		}

		err := s.pumpUntilDisconnect(ctx)
		metrics.SessionsConnected.Dec()
		if s.phase == Dead {
			return err
		}
		if err != nil {
			s.log.Info("session disconnected", zap.Error(err))
		}
		if s.phase != ReconnectPending {
			s.recon.Increment(true)
			metrics.ReconnectsTotal.Inc()
			s.phase = ReconnectPending
		}
	}
}

// connect dials the account's server, starts the transport worker, resets
// the cipher pair to its initial keys, and sends the first Hello.
func (s *Session) connect(ctx context.Context) error {
	addr := fmt.Sprintf("%s:2050", s.recon.CurrentServer)
	proxy := ""
	if s.account.UseSocks {
		proxy = s.account.SocksProxy
	}

	conn, err := transport.Dial(ctx, addr, proxy)
	if err != nil {
		return err
	}
	s.cipher.Reset()
	s.worker = transport.NewWorker(conn, s.log, 64)
	go func() {
		if err := s.worker.Run(ctx); err != nil {
			s.log.Debug("transport worker exited", zap.Error(err))
		}
	}()
	metrics.SessionsConnected.Inc()

	if err := s.sendHello(); err != nil {
		return err
	}
	s.phase = HelloSent
	return nil
}

func (s *Session) sendHello() error {
	encGuid, err := creds.Encrypt(s.account.Email)
	if err != nil {
		return fmt.Errorf("session: encrypt guid: %w", err)
	}
	encPassword, err := creds.Encrypt(s.account.Password)
	if err != nil {
		return fmt.Errorf("session: encrypt password: %w", err)
	}

	h := protocol.Hello{
		BuildVersion:  s.settings.GameVersion,
		GameID:        s.recon.GameID,
		Guid:          encGuid,
		Password:      encPassword,
		KeyTime:       s.recon.GameKeyTime,
		Key:           s.recon.GameKey,
		GameNet:       gameNet,
		PlayPlatform:  gameNet,
		ClientToken:   clientToken,
	}
	return s.sendOutbound(h)
}

// pumpUntilDisconnect reads inbound frames one at a time until the
// transport worker's Inbound channel closes (transport failure) or ctx is
// canceled.
func (s *Session) pumpUntilDisconnect(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case frame, ok := <-s.worker.Inbound:
			if !ok {
				return fmt.Errorf("session: transport closed")
			}
			metrics.BytesReceived.Add(float64(len(frame)))
			if err := s.handleFrame(frame); err != nil {
				return err
			}
			if s.phase == ReconnectPending {
				return nil
			}
		}
	}
}

// handleFrame decrypts a frame's payload in place, decodes it, and
// dispatches to the matching handler.
func (s *Session) handleFrame(frame []byte) error {
	payload := frame[5:]
	s.cipher.Incoming.XORKeyStream(payload, payload)

	pkt, err := protocol.Decode(frame)
	if err != nil {
		return fmt.Errorf("session: decode: %w", err)
	}
	s.dispatch(pkt)
	return nil
}

// sendOutbound encodes and RC4-encrypts pkt, then hands the frame to the
// transport worker. Encryption happens here, in the session — the worker
// never touches packet contents.
func (s *Session) sendOutbound(pkt protocol.Outbound) error {
	frame := pkt.Encode()
	payload := frame[5:]
	s.cipher.Outgoing.XORKeyStream(payload, payload)
	metrics.BytesSent.Add(float64(len(frame)))
	return s.worker.Send(context.Background(), frame, 5*time.Second)
}

// sendCommand is sendOutbound gated by the per-session rate limiter. It's
// used for operator/command-issued traffic (shoot, chat, inventory ops) —
// never for tick-driven acks, whose timeliness is a protocol requirement,
// not a policy knob.
func (s *Session) sendCommand(pkt protocol.Outbound) error {
	if err := s.limiter.Wait(context.Background()); err != nil {
		return err
	}
	return s.sendOutbound(pkt)
}

func (s *Session) clearHeaps() {
	s.objects.Clear()
	for k := range s.movement.Tiles {
		delete(s.movement.Tiles, k)
	}
	s.stats.Clear()
}

// queueRecon arms a reconnect to the given game id/key, unless a blocking
// reconnect is already pending.
func (s *Session) queueRecon(gameID int32, key []byte, keyTime uint32) {
	if s.recon.Blocking {
		return
	}
	s.recon.Queued = true
	s.recon.GameID = gameID
	s.recon.GameKey = key
	s.recon.GameKeyTime = keyTime
	s.recon.Increment(false)
	s.clearHeaps()
	s.phase = ReconnectPending
}

// parseUpdate folds tiles, new objects, and drops into session state,
// as well as updating the client's own tracked position/stats when one of
// the new objects is itself.
func (s *Session) parseUpdate(u protocol.Update) {
	for _, t := range u.Tiles {
		s.movement.Tiles[t] = t.TileType
	}
	for _, obj := range u.NewObjs {
		s.objects.Entities[obj.Status.ObjectID] = obj
		if obj.Status.ObjectID == s.objectID {
			s.movement.Current = obj.Status.Position
			s.movement.Target = s.movement.Current
			for _, st := range obj.Status.Stats {
				if st.Type == gametypes.Name {
					s.ign = st.StrValue
				}
				s.stats.Set(st)
			}
		}
	}
	for _, id := range u.Drops {
		delete(s.objects.Entities, id)
	}
}

func (s *Session) parseNewTick(nt protocol.NewTick) {
	for _, st := range nt.Statuses {
		if st.ObjectID == s.objectID {
			s.movement.ServerPosition = st.Position
			for _, v := range st.Stats {
				s.stats.Set(v)
			}
		}
		if st.ObjectID == s.objects.TargetObject.ObjectID {
			s.movement.Target = st.Position
		}
		if obj, ok := s.objects.Entities[st.ObjectID]; ok {
			obj.Status.Position = st.Position
			for _, v := range st.Stats {
				if obj.Status.Stats == nil {
					obj.Status.Stats = make(map[gametypes.Stat]gametypes.StatData)
				}
				obj.Status.Stats[v.Type] = v
			}
			s.objects.Entities[st.ObjectID] = obj
		}
	}
}

// handleText parses an inbound chat line into a command when it comes from
// the configured operator. Unknown verbs are ignored, matching the original
// console's behavior.
func (s *Session) handleText(t protocol.Text) {
	if s.operator == "" || t.Name != s.operator {
		return
	}
	args := strings.Fields(t.Message)
	if len(args) == 0 {
		return
	}
	verb, rest := args[0], args[1:]

	switch verb {
	case "tiles":
		s.log.Info("tiles", zap.Int("count", len(s.movement.Tiles)))
	case "drops":
		s.log.Info("drops", zap.Int32s("ids", s.goods.Drops))
	case "grab":
		if len(rest) == 0 {
			return
		}
		ot, _ := strconv.Atoi(rest[0])
		if obj, ok := s.objects.ByType(uint16(ot)); ok {
			s.objects.TargetObject = obj.Status
		}
	case "vault":
		s.queueRecon(-5, nil, 0xFFFFFFFF)
	case "nexus":
		_ = s.sendCommand(protocol.Escape{})
	case "fnexus":
		s.queueRecon(-2, nil, 0xFFFFFFFF)
	case "enter":
		_ = s.sendCommand(protocol.UsePortal{ObjectID: s.objects.StoredObject.ObjectID})
	case "ping":
		_ = s.sendCommand(protocol.PlayerText{Message: fmt.Sprintf("/t %s Pong!", t.Name)})
	case "trade":
		_ = s.sendCommand(protocol.PlayerText{Message: fmt.Sprintf("/trade %s", t.Name)})
	case "stop":
		s.objects.TargetObject.ObjectID = s.objectID
	case "follow":
		if obj, ok := s.objects.ByID(t.ObjectID); ok {
			s.movement.Target = obj.Status.Position
			s.objects.TargetObject = obj.Status
		}
	case "recon":
		s.queueRecon(s.recon.GameID, s.recon.GameKey, s.recon.GameKeyTime)
	case "teleport":
		objID := t.ObjectID
		if len(rest) > 0 {
			if v, err := strconv.Atoi(rest[0]); err == nil {
				objID = int32(v)
			}
		}
		if obj, ok := s.objects.ByID(t.ObjectID); ok {
			s.movement.Target = obj.Status.Position
		}
		_ = s.sendCommand(protocol.Teleport{ObjectID: objID})
	case "range":
		found := s.objects.InRange(s.movement.Current, s.objectID)
		s.log.Info("entities in range", zap.Int("count", len(found)))
	case "kick":
		if len(rest) == 0 {
			return
		}
		_ = s.sendCommand(protocol.GuildRemove{PlayerName: rest[0]})
	case "rank":
		if len(rest) < 2 {
			return
		}
		rank, _ := strconv.Atoi(rest[1])
		_ = s.sendCommand(protocol.ChangeGuildRank{Name: rest[0], Rank: int32(rank)})
	}
}
