// Package graph holds the static knowledge graph of geopolitical actors,
// industries, and commodities, and answers relationship queries over it.
//
// The graph is read-only configuration: nodes and edges are loaded once and
// never mutated. Query misses (unknown node, no path) return empty or nil
// results, not errors.
package graph

import "fmt"

// NodeType tags what kind of actor a node is.
type NodeType string

const (
	NodeCountry   NodeType = "country"
	NodeBloc      NodeType = "bloc"
	NodeIndustry  NodeType = "industry"
	NodeCommodity NodeType = "commodity"
)

// EdgeType tags a relationship kind.
type EdgeType string

const (
	EdgeRivalry    EdgeType = "rivalry"
	EdgeAlliance   EdgeType = "alliance"
	EdgeProduction EdgeType = "production"
	EdgeDemand     EdgeType = "demand"
	EdgeInput      EdgeType = "input"
	EdgeClaim      EdgeType = "claim"
)

// Node is one actor in the graph.
type Node struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       NodeType `json:"type"`
	Bloc       string   `json:"bloc,omitempty"`
	Importance int      `json:"importance"`
}

// Edge is a typed, weighted, directed relationship between two nodes.
type Edge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Type     EdgeType `json:"type"`
	Strength int      `json:"strength"`
	Label    string   `json:"label"`
}

// Connection is an edge annotated with the other endpoint, as seen from a
// query node.
type Connection struct {
	Edge
	OtherID   string `json:"otherId"`
	OtherName string `json:"otherName"`
}

// Exposure summarizes which nodes produce and consume a commodity.
type Exposure struct {
	Commodity string   `json:"commodity"`
	Producers []string `json:"producers"`
	Consumers []string `json:"consumers"`
	Risks     []string `json:"risks"`
}

// Hop is one step of a risk transmission path. ConnectionType and
// ConnectionLabel describe the edge used to reach this node from its
// predecessor; both are empty for the starting node.
type Hop struct {
	NodeName        string   `json:"nodeName"`
	NodeType        NodeType `json:"nodeType"`
	ConnectionType  EdgeType `json:"connectionType,omitempty"`
	ConnectionLabel string   `json:"connectionLabel,omitempty"`
}

// Graph is the loaded, validated dataset.
type Graph struct {
	nodes   []Node
	edges   []Edge
	byID    map[string]Node
	// adjacency holds edge indexes per node over the undirected view, in
	// edge-declaration order, so traversal is deterministic.
	adjacency map[string][]int
}

// New loads the built-in dataset. Fails fast on configuration defects.
func New() (*Graph, error) {
	return build(defaultNodes(), defaultEdges())
}

func build(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes:     nodes,
		edges:     edges,
		byID:      make(map[string]Node, len(nodes)),
		adjacency: make(map[string][]int),
	}

	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("graph node with empty id")
		}
		if _, dup := g.byID[n.ID]; dup {
			return nil, fmt.Errorf("graph node %q: duplicate id", n.ID)
		}
		g.byID[n.ID] = n
	}

	for i, e := range edges {
		if _, ok := g.byID[e.Source]; !ok {
			return nil, fmt.Errorf("graph edge %d: unknown source %q", i, e.Source)
		}
		if _, ok := g.byID[e.Target]; !ok {
			return nil, fmt.Errorf("graph edge %d: unknown target %q", i, e.Target)
		}
		g.adjacency[e.Source] = append(g.adjacency[e.Source], i)
		g.adjacency[e.Target] = append(g.adjacency[e.Target], i)
	}

	return g, nil
}

// Nodes returns the full node set.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the full edge set.
func (g *Graph) Edges() []Edge { return g.edges }

// Node looks up one node by id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Connections returns every edge touching the node, annotated with the
// other endpoint. Empty for unknown nodes.
func (g *Graph) Connections(nodeID string) []Connection {
	var out []Connection
	for _, i := range g.adjacency[nodeID] {
		e := g.edges[i]
		otherID := e.Target
		if otherID == nodeID {
			otherID = e.Source
		}
		out = append(out, Connection{
			Edge:      e,
			OtherID:   otherID,
			OtherName: g.byID[otherID].Name,
		})
	}
	return out
}

// SupplyChainExposure partitions the commodity's edges into producers
// (production edges targeting it) and consumers (demand edges targeting
// it), resolved to display names, plus the static risk-factor list.
func (g *Graph) SupplyChainExposure(commodityID string) Exposure {
	exp := Exposure{Commodity: commodityID}

	if n, ok := g.byID[commodityID]; ok {
		exp.Commodity = n.Name
	}

	seen := make(map[string]bool)
	for _, i := range g.adjacency[commodityID] {
		e := g.edges[i]
		if e.Target != commodityID || seen[e.Source] {
			continue
		}
		switch e.Type {
		case EdgeProduction:
			seen[e.Source] = true
			exp.Producers = append(exp.Producers, g.byID[e.Source].Name)
		case EdgeDemand:
			seen[e.Source] = true
			exp.Consumers = append(exp.Consumers, g.byID[e.Source].Name)
		}
	}

	if risks, ok := commodityRisks[commodityID]; ok {
		exp.Risks = risks
	} else {
		exp.Risks = genericRisks
	}
	return exp
}

// RiskTransmissionPath finds the shortest path between two nodes over the
// undirected view of the edge set, breadth-first, exploring neighbors in
// edge-declaration order so results are reproducible. Returns nil when
// either node is absent or the nodes are disconnected. A self-path is a
// single hop with no connection fields.
func (g *Graph) RiskTransmissionPath(fromID, toID string) []Hop {
	from, ok := g.byID[fromID]
	if !ok {
		return nil
	}
	if _, ok := g.byID[toID]; !ok {
		return nil
	}

	if fromID == toID {
		return []Hop{{NodeName: from.Name, NodeType: from.Type}}
	}

	visited := map[string]step{fromID: {prev: "", viaEdge: -1}}
	queue := []string{fromID}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, i := range g.adjacency[cur] {
			e := g.edges[i]
			next := e.Target
			if next == cur {
				next = e.Source
			}
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = step{prev: cur, viaEdge: i}
			if next == toID {
				return g.reconstruct(visited, toID)
			}
			queue = append(queue, next)
		}
	}

	return nil
}

// step records how BFS arrived at a node: the predecessor and the edge
// index used. viaEdge is -1 for the starting node.
type step struct {
	prev    string
	viaEdge int
}

func (g *Graph) reconstruct(visited map[string]step, toID string) []Hop {
	var hops []Hop
	for id := toID; id != ""; {
		st := visited[id]
		n := g.byID[id]
		hop := Hop{NodeName: n.Name, NodeType: n.Type}
		if st.viaEdge >= 0 {
			e := g.edges[st.viaEdge]
			hop.ConnectionType = e.Type
			hop.ConnectionLabel = e.Label
		}
		hops = append(hops, hop)
		id = st.prev
	}

	// Reverse into start→destination order
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return hops
}
