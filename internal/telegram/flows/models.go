package flows

// AddConfigFlowData - data for admin add config
type AddConfigFlowData struct {
	Name string
}
