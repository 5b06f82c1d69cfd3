package openapi

// GeneralErrorResponse is the body of every non 2xx answer
type GeneralErrorResponse struct {
	Error string `json:"error"`
}

// EncodeResponse carries a value and its canonical encoding
type EncodeResponse struct {
	Value string `json:"value"`
	Hex   string `json:"hex"`
	Rlp   string `json:"rlp"`
}

// DecodeResponse carries a decoded value
type DecodeResponse struct {
	Value string `json:"value"`
	Hex   string `json:"hex"`
}

type CheckResponse struct {
	Valid bool `json:"valid"`
}

type MintRequest struct {
	Amount string `json:"amount"`
}

type TransferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
	Nonce  string `json:"nonce"`
}

// EncodeU256Params defines parameters for EncodeU256.
type EncodeU256Params struct {
	Value string `json:"value"`
}

// DecodeU256Params defines parameters for DecodeU256.
type DecodeU256Params struct {
	Rlp string `json:"rlp"`
}

// CheckU256Params defines parameters for CheckU256.
type CheckU256Params struct {
	Value string `json:"value"`
}

// GetTransfersParams defines parameters for GetTransfers.
type GetTransfersParams struct {
	Limit *int `json:"limit,omitempty"`
}
