package cmd

import (
	"fmt"
	"strings"

	"studyflow/internal/domain"
	"studyflow/internal/services"
)

const shortIDLen = 8

// shortID abbreviates a session or reflection id for display
func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// findSession resolves a full id or a unique id prefix
func findSession(cache *services.LocalCache, id string) (domain.Session, error) {
	if s, ok := cache.Session(id); ok {
		return s, nil
	}

	var matches []domain.Session
	for _, s := range cache.Sessions() {
		if strings.HasPrefix(s.ID, id) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Session{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return domain.Session{}, fmt.Errorf("session id %q is ambiguous (%d matches)", id, len(matches))
	}
}

// latestSession returns the most recently started session
func latestSession(cache *services.LocalCache) (domain.Session, error) {
	var latest domain.Session
	found := false
	for _, s := range cache.Sessions() {
		if !found || s.StartedAt.After(latest.StartedAt) {
			latest = s
			found = true
		}
	}
	if !found {
		return domain.Session{}, fmt.Errorf("%w: no sessions yet", domain.ErrSessionNotFound)
	}
	return latest, nil
}
