package model

type PutRecordParams struct {
	IP string `json:"IP"`
}

type GetNodesResponse struct {
	Nodes []Node `json:"Nodes"`
}

type ErrorResponse struct {
	Error string `json:"Error"`
}
