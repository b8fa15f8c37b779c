package network

import (
	"testing"

	"example.com/your_project/network-design/internal/cost"
	"example.com/your_project/network-design/internal/instance"
)

func TestBuildMultiSourceRejectsEmptyCandidates(t *testing.T) {
	inst := sampleInstance()
	tables := cost.Build(inst.Plant, inst.DC, inst.Cust, cost.DefaultOptions())

	_, err := BuildMultiSource(inst, tables, nil, 1, DefaultMultiSourceOptions())
	if err == nil {
		t.Fatal("expected error for empty DC candidate set")
	}
}

func TestBuildMultiSourceRejectsNonPositiveDCNum(t *testing.T) {
	inst := sampleInstance()
	tables := cost.Build(inst.Plant, inst.DC, inst.Cust, cost.DefaultOptions())

	_, err := BuildMultiSource(inst, tables, []string{"DC1"}, 0, DefaultMultiSourceOptions())
	if err == nil {
		t.Fatal("expected error for dc_num <= 0")
	}
}

func TestBuildMultiSourceProducesExpectedVariableFamilies(t *testing.T) {
	inst := sampleInstance()
	tables := cost.Build(inst.Plant, inst.DC, inst.Cust, cost.DefaultOptions())

	m, err := BuildMultiSource(inst, tables, []string{"DC1", "DC2"}, 1, DefaultMultiSourceOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(m.Y) != 2 {
		t.Fatalf("len(Y) = %d, want 2", len(m.Y))
	}
	if len(m.PlantDCArcs) != 2 {
		t.Fatalf("len(PlantDCArcs) = %d, want 2", len(m.PlantDCArcs))
	}
	if len(m.DCCustArcs) != 4 {
		t.Fatalf("len(DCCustArcs) = %d, want 4", len(m.DCCustArcs))
	}
}
