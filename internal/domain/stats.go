package domain

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
)

// TopN is how many entries the ranking reports keep.
const TopN = 3

// Ranked is one row of a ranking report.
type Ranked struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Statistics summarizes sales, payments and shipments.
type Statistics struct {
	SalesCount          int             `json:"sales_count"`
	SalesTotal          decimal.Decimal `json:"sales_total"`
	TopProducts         []Ranked        `json:"top_products"`
	FrequentCustomers   []Ranked        `json:"frequent_customers"`
	PaymentsCount       int             `json:"payments_count"`
	Collected           decimal.Decimal `json:"collected"`
	Outstanding         decimal.Decimal `json:"outstanding"`
	PendingPayers       []string        `json:"pending_payers"`
	ShipmentsCount      int             `json:"shipments_count"`
	TopShippedProducts  []Ranked        `json:"top_shipped_products"`
	PendingShipmentsFor []string        `json:"pending_shipments_for"`
}

// ComputeStatistics derives every report from the snapshot collections.
func ComputeStatistics(snap *Snapshot) Statistics {
	st := Statistics{
		SalesCount:     len(snap.Sales),
		SalesTotal:     decimal.Zero,
		PaymentsCount:  len(snap.Payments),
		Collected:      decimal.Zero,
		Outstanding:    decimal.Zero,
		ShipmentsCount: len(snap.Shipments),
	}

	sold := newTally()
	buyers := newTally()
	for _, s := range snap.Sales {
		st.SalesTotal = st.SalesTotal.Add(s.Total)
		for _, l := range s.Lines {
			sold.add(strconv.Itoa(l.ProductID), l.Name, l.Quantity)
		}
		if s.Customer != nil {
			buyers.add(s.Customer.Key(), s.Customer.DisplayName(), 1)
		}
	}
	st.TopProducts = sold.top(TopN)
	st.FrequentCustomers = buyers.top(TopN)

	seen := make(map[string]bool)
	for _, p := range snap.Payments {
		if p.Completed {
			st.Collected = st.Collected.Add(p.Amount)
			continue
		}
		st.Outstanding = st.Outstanding.Add(p.Amount)
		if p.Customer != nil && !seen[p.Customer.Key()] {
			seen[p.Customer.Key()] = true
			st.PendingPayers = append(st.PendingPayers, p.Customer.DisplayName())
		}
	}

	shipped := newTally()
	seen = make(map[string]bool)
	for _, sh := range snap.Shipments {
		if sh.Sale != nil {
			for _, l := range sh.Sale.Lines {
				shipped.add(strconv.Itoa(l.ProductID), l.Name, l.Quantity)
			}
		}
		if !sh.Completed && sh.Customer != nil && !seen[sh.Customer.Key()] {
			seen[sh.Customer.Key()] = true
			st.PendingShipmentsFor = append(st.PendingShipmentsFor, sh.Customer.DisplayName())
		}
	}
	st.TopShippedProducts = shipped.top(TopN)

	return st
}

// tally counts by key and remembers first-seen order for tie breaking.
type tally struct {
	order  []string
	names  map[string]string
	counts map[string]int
}

func newTally() *tally {
	return &tally{names: make(map[string]string), counts: make(map[string]int)}
}

func (t *tally) add(key, name string, n int) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
		t.names[key] = name
	}
	t.counts[key] += n
}

func (t *tally) top(n int) []Ranked {
	out := make([]Ranked, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, Ranked{Name: t.names[key], Count: t.counts[key]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
