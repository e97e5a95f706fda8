package graph

import (
	"reflect"
	"testing"
)

func TestBuiltInDatasetValid(t *testing.T) {
	if _, err := New(); err != nil {
		t.Fatalf("built-in graph invalid: %v", err)
	}
}

func TestBuildRejectsDanglingEdge(t *testing.T) {
	nodes := []Node{{ID: "a", Name: "A", Type: NodeCountry, Importance: 5}}
	edges := []Edge{{Source: "a", Target: "ghost", Type: EdgeRivalry, Strength: 5}}
	if _, err := build(nodes, edges); err == nil {
		t.Error("edge to unknown node should fail validation")
	}
}

func TestBuildRejectsDuplicateNode(t *testing.T) {
	nodes := []Node{
		{ID: "a", Name: "A", Type: NodeCountry, Importance: 5},
		{ID: "a", Name: "A again", Type: NodeBloc, Importance: 5},
	}
	if _, err := build(nodes, nil); err == nil {
		t.Error("duplicate node id should fail validation")
	}
}

func TestConnectionsAnnotatesOtherEndpoint(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}

	conns := g.Connections("taiwan")
	if len(conns) == 0 {
		t.Fatal("taiwan should have connections")
	}
	for _, c := range conns {
		if c.OtherID == "taiwan" {
			t.Errorf("connection other endpoint should not be the query node")
		}
		if c.OtherName == "" {
			t.Errorf("other endpoint name missing for %q", c.OtherID)
		}
	}
}

func TestConnectionsUnknownNodeEmpty(t *testing.T) {
	g, _ := New()
	if conns := g.Connections("atlantis"); len(conns) != 0 {
		t.Errorf("unknown node should have no connections, got %d", len(conns))
	}
}

func TestSupplyChainExposureOil(t *testing.T) {
	g, _ := New()
	exp := g.SupplyChainExposure("oil")

	// Every production edge targeting oil must appear exactly once
	wantProducers := map[string]bool{}
	for _, e := range g.Edges() {
		if e.Type == EdgeProduction && e.Target == "oil" {
			n, _ := g.Node(e.Source)
			wantProducers[n.Name] = true
		}
	}

	seen := map[string]int{}
	for _, p := range exp.Producers {
		seen[p]++
	}
	for name := range wantProducers {
		if seen[name] != 1 {
			t.Errorf("producer %q appears %d times, want exactly once", name, seen[name])
		}
	}
	if len(exp.Producers) != len(wantProducers) {
		t.Errorf("got %d producers, want %d", len(exp.Producers), len(wantProducers))
	}

	if len(exp.Consumers) == 0 {
		t.Error("oil should have demand-side consumers")
	}
	if len(exp.Risks) == 0 {
		t.Error("oil should have a risk-factor list")
	}
}

func TestSupplyChainExposureUnknownCommodity(t *testing.T) {
	g, _ := New()
	exp := g.SupplyChainExposure("unobtainium")
	if len(exp.Producers) != 0 || len(exp.Consumers) != 0 {
		t.Error("unknown commodity should have no producers or consumers")
	}
	if !reflect.DeepEqual(exp.Risks, genericRisks) {
		t.Error("unknown commodity should get the generic risk list")
	}
}

func TestRiskTransmissionPathSelf(t *testing.T) {
	g, _ := New()
	hops := g.RiskTransmissionPath("china", "china")
	if len(hops) != 1 {
		t.Fatalf("self-path = %d hops, want 1", len(hops))
	}
	if hops[0].ConnectionType != "" || hops[0].ConnectionLabel != "" {
		t.Error("self-path hop should have no connection fields")
	}
	if hops[0].NodeName != "China" {
		t.Errorf("self-path node = %q, want China", hops[0].NodeName)
	}
}

func TestRiskTransmissionPathUnknownNode(t *testing.T) {
	g, _ := New()
	if hops := g.RiskTransmissionPath("atlantis", "china"); hops != nil {
		t.Error("unknown start node should yield nil")
	}
	if hops := g.RiskTransmissionPath("china", "atlantis"); hops != nil {
		t.Error("unknown end node should yield nil")
	}
}

func TestRiskTransmissionPathDisconnected(t *testing.T) {
	nodes := []Node{
		{ID: "a", Name: "A", Type: NodeCountry, Importance: 5},
		{ID: "b", Name: "B", Type: NodeCountry, Importance: 5},
		{ID: "island", Name: "Island", Type: NodeCountry, Importance: 5},
	}
	edges := []Edge{{Source: "a", Target: "b", Type: EdgeAlliance, Strength: 5, Label: "pact"}}
	g, err := build(nodes, edges)
	if err != nil {
		t.Fatal(err)
	}

	if hops := g.RiskTransmissionPath("a", "island"); hops != nil {
		t.Error("disconnected nodes should yield nil")
	}
}

func TestRiskTransmissionPathStructure(t *testing.T) {
	g, _ := New()
	hops := g.RiskTransmissionPath("russia", "oil")
	if hops == nil {
		t.Fatal("russia→oil should be connected")
	}

	if hops[0].NodeName != "Russia" {
		t.Errorf("path starts at %q, want Russia", hops[0].NodeName)
	}
	if hops[0].ConnectionType != "" {
		t.Error("starting hop should have no connection fields")
	}
	last := hops[len(hops)-1]
	if last.NodeName != "Crude Oil" {
		t.Errorf("path ends at %q, want Crude Oil", last.NodeName)
	}
	for _, hop := range hops[1:] {
		if hop.ConnectionType == "" || hop.ConnectionLabel == "" {
			t.Errorf("non-start hop missing connection fields: %+v", hop)
		}
	}
	// Direct production edge exists, so BFS must find the 2-hop path
	if len(hops) != 2 {
		t.Errorf("path length = %d, want 2", len(hops))
	}
}

func TestRiskTransmissionPathDeterministic(t *testing.T) {
	g, _ := New()
	first := g.RiskTransmissionPath("germany", "lithium")
	for i := 0; i < 5; i++ {
		if got := g.RiskTransmissionPath("germany", "lithium"); !reflect.DeepEqual(got, first) {
			t.Fatal("BFS result changed between identical queries")
		}
	}
}
