package domain

import (
	"fmt"
	"strings"
)

// Channel is a named navigable section of the page.
type Channel string

const (
	ChannelHero     Channel = "hero"
	ChannelAbout    Channel = "about"
	ChannelProjects Channel = "projects"
	ChannelSkills   Channel = "skills"
	ChannelContact  Channel = "contact"
)

// DefaultChannel is shown at startup and used when a trigger names an unknown channel.
const DefaultChannel = ChannelHero

var channelOrder = [...]Channel{
	ChannelHero,
	ChannelAbout,
	ChannelProjects,
	ChannelSkills,
	ChannelContact,
}

// Channels returns the channels in ordinal order.
func Channels() []Channel {
	out := make([]Channel, len(channelOrder))
	copy(out, channelOrder[:])
	return out
}

// Ordinal returns the position of c in navigation order, or -1 for unknown channels.
func (c Channel) Ordinal() int {
	for i, ch := range channelOrder {
		if ch == c {
			return i
		}
	}
	return -1
}

func (c Channel) Valid() bool { return c.Ordinal() >= 0 }

// Code is the two-digit readout shown in the header ("01" for hero).
// Unknown channels read as the default channel's code.
func (c Channel) Code() string {
	i := c.Ordinal()
	if i < 0 {
		i = DefaultChannel.Ordinal()
	}
	return fmt.Sprintf("%02d", i+1)
}

// Next returns the following channel, wrapping from the last to the first.
func (c Channel) Next() Channel {
	i := c.Ordinal()
	if i < 0 {
		return DefaultChannel
	}
	return channelOrder[(i+1)%len(channelOrder)]
}

// Prev returns the preceding channel, wrapping from the first to the last.
func (c Channel) Prev() Channel {
	i := c.Ordinal()
	if i < 0 {
		return DefaultChannel
	}
	return channelOrder[(i-1+len(channelOrder))%len(channelOrder)]
}

func (c Channel) String() string { return string(c) }

// Title is the upper-case label used on the channel bar.
func (c Channel) Title() string { return strings.ToUpper(string(c)) }

// ParseChannel accepts a channel id ("skills") or a display code ("04").
func ParseChannel(s string) (Channel, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for i, ch := range channelOrder {
		if string(ch) == v || fmt.Sprintf("%02d", i+1) == v {
			return ch, nil
		}
	}
	return "", &OpError{
		Op:   "domain.parse_channel",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("%w %q", ErrInvalidChannel, s),
	}
}

// ChannelFromDigit maps the keys '1'..'5' to channels by position.
func ChannelFromDigit(r rune) (Channel, bool) {
	i := int(r - '1')
	if i < 0 || i >= len(channelOrder) {
		return "", false
	}
	return channelOrder[i], true
}

// NavigationState is a snapshot of the orchestrator's state.
type NavigationState struct {
	Current Channel
	Busy    bool
}
