package network

import (
	"testing"

	"example.com/your_project/network-design/internal/cost"
)

func TestBuildSingleSourceRejectsEmptyCandidates(t *testing.T) {
	inst := sampleInstance()
	tables := cost.Build(inst.Plant, inst.DC, inst.Cust, cost.DefaultOptions())

	_, err := BuildSingleSource(inst, tables, nil, 1, DefaultSingleSourceOptions())
	if err == nil {
		t.Fatal("expected error for empty DC candidate set")
	}
}

func TestBuildSingleSourceOneSlackPerCustomer(t *testing.T) {
	inst := sampleInstance()
	tables := cost.Build(inst.Plant, inst.DC, inst.Cust, cost.DefaultOptions())

	m, err := BuildSingleSource(inst, tables, []string{"DC1", "DC2"}, 1, DefaultSingleSourceOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every customer gets exactly one slack variable.
	if len(m.Slack) != len(inst.Cust) {
		t.Fatalf("len(Slack) = %d, want %d", len(m.Slack), len(inst.Cust))
	}
}
