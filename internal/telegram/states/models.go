package states

type State string

const (
	StateNone State = "none"
)

// aac -> admin add config
// abc -> admin broadcast

// admin add config states
const (
	AdminAddConfigWaitName State = "aac_wt_name"
	AdminAddConfigWaitURL  State = "aac_wt_url"
)

// admin broadcast states
const (
	AdminBroadcastWaitText State = "abc_wt_text"
)

// IsActive reports whether the state expects further text input.
func (s State) IsActive() bool {
	return s != "" && s != StateNone
}
