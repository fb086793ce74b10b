package state

import (
	"fmt"
	"strings"
)

// Vote is a belief stance on an article. It encodes as 1 or -1.
type Vote int

const (
	Disbelieve Vote = -1
	Believe    Vote = 1
)

func (v Vote) Valid() bool {
	return v == Believe || v == Disbelieve
}

func (v Vote) String() string {
	switch v {
	case Believe:
		return "believe"
	case Disbelieve:
		return "disbelieve"
	default:
		return fmt.Sprintf("Vote(%d)", int(v))
	}
}

// Label is the on-screen wording for v.
func (v Vote) Label() string {
	switch v {
	case Believe:
		return "信じる"
	case Disbelieve:
		return "信じない"
	default:
		return "未投票"
	}
}

// ParseVote accepts believe/disbelieve, 1/-1, +1, and the Japanese labels.
func ParseVote(s string) (Vote, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "believe", "1", "+1", "yes", "信じる":
		return Believe, nil
	case "disbelieve", "-1", "no", "信じない":
		return Disbelieve, nil
	}
	return 0, fmt.Errorf("unknown vote %q (valid: believe, disbelieve)", s)
}
