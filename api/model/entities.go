package model

type Node struct {
	Addr    string `json:"Addr"`
	Host    string `json:"Host"`
	Port    int    `json:"Port"`
	Current bool   `json:"Current"`
}

type Record struct {
	Name string `json:"Name"`
	IP   string `json:"IP"`
}
