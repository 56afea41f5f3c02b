package reveal

import "time"

// Timing holds every delay used by the reveal routines.
type Timing struct {
	TypeChar    time.Duration
	SectionLead time.Duration
	PowerOn     time.Duration

	MatrixAppear      time.Duration
	MatrixGlitch      time.Duration
	MatrixGlitchSteps int
	MatrixReveal      time.Duration
	MatrixSettle      time.Duration

	DiagStartup     time.Duration
	DiagHeader      time.Duration
	DiagCardAppear  time.Duration
	DiagBarStep     time.Duration
	DiagBarSteps    int
	DiagEntryGap    time.Duration
	DiagCategoryGap time.Duration

	ContactTypeChar time.Duration
	ContactSend     time.Duration
	ContactReset    time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		TypeChar:    10 * time.Millisecond,
		SectionLead: 300 * time.Millisecond,
		PowerOn:     2 * time.Second,

		MatrixAppear:      100 * time.Millisecond,
		MatrixGlitch:      150 * time.Millisecond,
		MatrixGlitchSteps: 3,
		MatrixReveal:      200 * time.Millisecond,
		MatrixSettle:      300 * time.Millisecond,

		DiagStartup:     1000 * time.Millisecond,
		DiagHeader:      300 * time.Millisecond,
		DiagCardAppear:  100 * time.Millisecond,
		DiagBarStep:     50 * time.Millisecond,
		DiagBarSteps:    10,
		DiagEntryGap:    150 * time.Millisecond,
		DiagCategoryGap: 400 * time.Millisecond,

		ContactTypeChar: 15 * time.Millisecond,
		ContactSend:     1500 * time.Millisecond,
		ContactReset:    3000 * time.Millisecond,
	}
}

// Scaled multiplies every delay by f. Step counts are left alone.
func (t Timing) Scaled(f float64) Timing {
	if f < 0 {
		f = 0
	}
	s := func(d time.Duration) time.Duration { return time.Duration(float64(d) * f) }

	t.TypeChar = s(t.TypeChar)
	t.SectionLead = s(t.SectionLead)
	t.PowerOn = s(t.PowerOn)
	t.MatrixAppear = s(t.MatrixAppear)
	t.MatrixGlitch = s(t.MatrixGlitch)
	t.MatrixReveal = s(t.MatrixReveal)
	t.MatrixSettle = s(t.MatrixSettle)
	t.DiagStartup = s(t.DiagStartup)
	t.DiagHeader = s(t.DiagHeader)
	t.DiagCardAppear = s(t.DiagCardAppear)
	t.DiagBarStep = s(t.DiagBarStep)
	t.DiagEntryGap = s(t.DiagEntryGap)
	t.DiagCategoryGap = s(t.DiagCategoryGap)
	t.ContactTypeChar = s(t.ContactTypeChar)
	t.ContactSend = s(t.ContactSend)
	t.ContactReset = s(t.ContactReset)
	return t
}
