package avl

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// checkInvariants walks the tree and fails on any BST ordering, cached
// height, or balance violation. It returns the subtree height.
func checkInvariants[V any](t interface {
	Helper()
	Fatalf(string, ...any)
}, tr *Tree[string, V], n *node[string, V]) int {
	t.Helper()
	if n == nil {
		return 0
	}
	if n.left != nil && !tr.less(n.left.key, n.key) {
		t.Fatalf("left child %q not less than %q", n.left.key, n.key)
	}
	if n.right != nil && !tr.less(n.key, n.right.key) {
		t.Fatalf("right child %q not greater than %q", n.right.key, n.key)
	}
	lh := checkInvariants(t, tr, n.left)
	rh := checkInvariants(t, tr, n.right)
	if d := lh - rh; d < -1 || d > 1 {
		t.Fatalf("node %q unbalanced: left height %d, right height %d", n.key, lh, rh)
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		t.Fatalf("node %q cached height %d, want %d", n.key, n.height, h)
	}
	return h
}

func TestInsertRemove_RoundTrip(t *testing.T) {
	tr := NewOrdered[string, string]()
	tr.Insert("Chave", "Opens the final gate")
	tr.Insert("Anel", "Item found.")
	tr.Insert("Ouro", "Item found.")
	tr.Remove("Anel")

	got := tr.Keys()
	want := []string{"Chave", "Ouro"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tr.Len())
	}
}

func TestInsert_DuplicateUpdatesValue(t *testing.T) {
	tr := NewOrdered[string, string]()
	tr.Insert("Rubi", "old")
	tr.Insert("Rubi", "new")

	v, ok := tr.Search("Rubi")
	if !ok || v != "new" {
		t.Errorf("Search(Rubi) = %q, %v, want \"new\", true", v, ok)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	tr := NewOrdered[string, int]()
	tr.Insert("a", 1)
	tr.Remove("zzz")
	if tr.Len() != 1 || !tr.Has("a") {
		t.Errorf("after removing absent key: Len() = %d, Has(a) = %v", tr.Len(), tr.Has("a"))
	}

	empty := NewOrdered[string, int]()
	empty.Remove("x")
	if empty.Len() != 0 {
		t.Errorf("Len() = %d after removing from empty tree, want 0", empty.Len())
	}
}

func TestInsert_RotationCases(t *testing.T) {
	tests := []struct {
		name     string
		keys     []string
		wantRoot string
	}{
		{"left-left", []string{"c", "b", "a"}, "b"},
		{"right-right", []string{"a", "b", "c"}, "b"},
		{"left-right", []string{"c", "a", "b"}, "b"},
		{"right-left", []string{"a", "c", "b"}, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewOrdered[string, struct{}]()
			for _, k := range tt.keys {
				tr.Insert(k, struct{}{})
			}
			if tr.root.key != tt.wantRoot {
				t.Errorf("root = %q, want %q", tr.root.key, tt.wantRoot)
			}
			if tr.Height() != 2 {
				t.Errorf("Height() = %d, want 2", tr.Height())
			}
		})
	}
}

func TestRemove_TwoChildrenUsesSuccessor(t *testing.T) {
	tr := NewOrdered[string, string]()
	for _, k := range []string{"d", "b", "f", "a", "c", "e", "g"} {
		tr.Insert(k, "v"+k)
	}
	tr.Remove("d")

	if tr.root.key != "e" {
		t.Errorf("root after removing d = %q, want successor \"e\"", tr.root.key)
	}
	if v, _ := tr.Search("e"); v != "ve" {
		t.Errorf("Search(e) = %q, want \"ve\" (successor data moved with key)", v)
	}
	checkInvariants(t, tr, tr.root)
}

func TestRemove_RebalancesByChildBalance(t *testing.T) {
	// Removing "e" leaves the root left-heavy with a left child whose
	// balance is 0: the outer (single right rotation) case.
	tr := NewOrdered[string, int]()
	for _, k := range []string{"d", "b", "e", "a", "c"} {
		tr.Insert(k, 0)
	}
	tr.Remove("e")
	if tr.root.key != "b" {
		t.Errorf("root = %q, want \"b\"", tr.root.key)
	}
	checkInvariants(t, tr, tr.root)

	// Left child leaning right: the inner (left-right) case.
	tr = NewOrdered[string, int]()
	for _, k := range []string{"c", "a", "d", "b"} {
		tr.Insert(k, 0)
	}
	tr.Remove("d")
	if tr.root.key != "b" {
		t.Errorf("root = %q, want \"b\"", tr.root.key)
	}
	checkInvariants(t, tr, tr.root)
}

func TestAll_StopsEarlyAndRestarts(t *testing.T) {
	tr := NewOrdered[string, int]()
	for i, k := range []string{"m", "c", "x", "a"} {
		tr.Insert(k, i)
	}

	var first []string
	for k := range tr.All() {
		first = append(first, k)
		if len(first) == 2 {
			break
		}
	}
	if !slices.Equal(first, []string{"a", "c"}) {
		t.Errorf("partial traversal = %v, want [a c]", first)
	}

	count := 0
	for range tr.All() {
		count++
	}
	if count != 4 {
		t.Errorf("fresh traversal visited %d keys, want 4", count)
	}
}

func TestObserver_ReportsEvents(t *testing.T) {
	tr := NewOrdered[string, string]()
	var kinds []EventKind
	tr.SetObserver(func(e Event[string]) { kinds = append(kinds, e.Kind) })

	tr.Insert("a", "")
	tr.Insert("a", "x")
	tr.Remove("a")
	tr.Remove("a")

	want := []EventKind{EventInserted, EventUpdated, EventRemoved, EventNotFound}
	if !slices.Equal(kinds, want) {
		t.Errorf("events = %v, want %v", kinds, want)
	}
}

func TestProperty_BalancedAfterAnySequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := NewOrdered[string, int]()
		model := make(map[string]bool)

		ops := rapid.SliceOfN(rapid.IntRange(0, 1), 1, 200).Draw(t, "ops")
		for i, op := range ops {
			key := rapid.StringMatching(`[a-h]{1,2}`).Draw(t, "key")
			if op == 0 {
				tr.Insert(key, i)
				model[key] = true
			} else {
				tr.Remove(key)
				delete(model, key)
			}
			checkInvariants(t, tr, tr.root)
		}

		keys := tr.Keys()
		for i := 1; i < len(keys); i++ {
			if keys[i-1] >= keys[i] {
				t.Fatalf("in-order keys not strictly ascending: %v", keys)
			}
		}
		if len(keys) != len(model) || tr.Len() != len(model) {
			t.Fatalf("tree holds %d keys (Len %d), model holds %d", len(keys), tr.Len(), len(model))
		}
		for k := range model {
			if !tr.Has(k) {
				t.Fatalf("Has(%q) = false, want true", k)
			}
		}
	})
}
