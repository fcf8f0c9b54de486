package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/kvdns/api/model"
)

type NodesHandler struct {
	cluster Cluster
}

func NewNodesHandler(cluster Cluster) *NodesHandler {
	return &NodesHandler{
		cluster: cluster,
	}
}

func (api *NodesHandler) Register(r chi.Router) {
	r.Get("/nodes", api.getNodes)
}

func (api *NodesHandler) getNodes(w http.ResponseWriter, r *http.Request) {
	nodes := api.cluster.Nodes()
	current := api.cluster.Current()
	respNodes := make([]model.Node, len(nodes))

	for i, node := range nodes {
		respNodes[i] = model.Node{
			Addr:    node.Addr(),
			Host:    node.Host,
			Port:    node.Port,
			Current: node == current,
		}
	}

	render.JSON(w, r, model.GetNodesResponse{
		Nodes: respNodes,
	})
}
