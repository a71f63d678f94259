package config

import (
	"sort"
	"strings"
	"sync"

	"github.com/enryu8191/Creator-Bot/db"
	"github.com/enryu8191/Creator-Bot/model"
)

// Config store keys for runtime overrides.
const (
	KeyAllowedChannels = "allowed_channel_ids"
	KeyLogChannel      = "log_channel_id"
	KeyReportChannel   = "report_channel_id"
)

// Runtime is the mutable channel configuration shared by the event
// handlers and admin commands. It is seeded from the process config,
// overridden by values persisted in the store, and every admin mutation
// writes through to the store so overrides survive restarts.
type Runtime struct {
	mu    sync.RWMutex
	store *db.Store

	// allowed is nil when every channel is allowed.
	allowed         map[string]struct{}
	logChannelID    string
	reportChannelID string
	completionEmoji string
}

// NewRuntime creates a Runtime seeded from the file configuration.
func NewRuntime(store *db.Store, seed model.EngageBot) *Runtime {
	r := &Runtime{
		store:           store,
		logChannelID:    seed.LogChannelID,
		reportChannelID: seed.ReportChannelID,
		completionEmoji: seed.CompletionEmoji,
	}
	if r.completionEmoji == "" {
		r.completionEmoji = "✅"
	}
	if len(seed.AllowedChannelIDs) > 0 {
		r.allowed = make(map[string]struct{})
		for _, id := range seed.AllowedChannelIDs {
			if id != "" {
				r.allowed[id] = struct{}{}
			}
		}
	}
	return r
}

// Load applies runtime overrides persisted in the store. Absent keys leave
// the seeded values in place.
func (r *Runtime) Load() error {
	allowed, err := r.store.GetConfig(KeyAllowedChannels)
	if err != nil {
		return err
	}
	logCh, err := r.store.GetConfig(KeyLogChannel)
	if err != nil {
		return err
	}
	reportCh, err := r.store.GetConfig(KeyReportChannel)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if allowed != "" {
		r.allowed = parseChannelCSV(allowed)
	}
	if logCh != "" {
		r.logChannelID = logCh
	}
	if reportCh != "" {
		r.reportChannelID = reportCh
	}
	return nil
}

// ChannelAllowed reports whether submissions and reactions in the given
// channel are tracked. An empty allowed set means all channels.
func (r *Runtime) ChannelAllowed(channelID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.allowed == nil {
		return true
	}
	_, ok := r.allowed[channelID]
	return ok
}

// AllowedChannels returns the configured channel IDs, sorted. Empty means
// all channels are allowed.
func (r *Runtime) AllowedChannels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.allowed))
	for id := range r.allowed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SetAllowedChannels replaces the allowed-channel set, or extends it when
// add is true, and persists the result.
func (r *Runtime) SetAllowedChannels(ids []string, add bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make(map[string]struct{})
	if add && r.allowed != nil {
		for id := range r.allowed {
			next[id] = struct{}{}
		}
	}
	for _, id := range ids {
		if id != "" {
			next[id] = struct{}{}
		}
	}

	if len(next) == 0 {
		// No channels restricts nothing; drop the override entirely.
		if err := r.store.DeleteConfig(KeyAllowedChannels); err != nil {
			return err
		}
		r.allowed = nil
		return nil
	}

	sorted := make([]string, 0, len(next))
	for id := range next {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)
	if err := r.store.SetConfig(KeyAllowedChannels, strings.Join(sorted, ",")); err != nil {
		return err
	}
	r.allowed = next
	return nil
}

// LogChannelID returns the channel receiving activity logs.
func (r *Runtime) LogChannelID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.logChannelID
}

// SetLogChannel updates and persists the log channel.
func (r *Runtime) SetLogChannel(channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.SetConfig(KeyLogChannel, channelID); err != nil {
		return err
	}
	r.logChannelID = channelID
	return nil
}

// ReportChannelID returns the channel receiving engagement reports.
func (r *Runtime) ReportChannelID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reportChannelID
}

// SetReportChannel updates and persists the report channel.
func (r *Runtime) SetReportChannel(channelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.SetConfig(KeyReportChannel, channelID); err != nil {
		return err
	}
	r.reportChannelID = channelID
	return nil
}

// CompletionEmoji returns the reaction emoji that marks engagement.
func (r *Runtime) CompletionEmoji() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.completionEmoji
}

func parseChannelCSV(csv string) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids[part] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}
