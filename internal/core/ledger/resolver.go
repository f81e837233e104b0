package ledger

import (
	"sort"
	"strings"
	"unicode"

	"github.com/SscSPs/property_backoffice/internal/core/domain"
)

// MatchStatus is the outcome of resolving a record to a tenant.
type MatchStatus string

const (
	MatchMatched   MatchStatus = "matched"
	MatchAmbiguous MatchStatus = "ambiguous"
	MatchUnmatched MatchStatus = "unmatched"
)

// MatchMethod names the stage that produced a resolution.
type MatchMethod string

const (
	MethodNone         MatchMethod = ""
	MethodTenantID     MatchMethod = "tenant_id"
	MethodPropertyUnit MatchMethod = "property_unit"
	MethodUnit         MatchMethod = "unit"
	MethodDescription  MatchMethod = "description"
)

// Confidence levels per match stage.
const (
	ConfidenceTenantID     = 1.0
	ConfidencePropertyUnit = 0.95
	ConfidenceUnitOnly     = 0.85
	ConfidenceReference    = 0.9
	ConfidenceName         = 0.8
	ConfidenceUnitToken    = 0.6
)

// minTextMatchLen keeps short names and references from matching everywhere.
const minTextMatchLen = 3

// MatchInput is the subset of an external record the resolver looks at.
type MatchInput struct {
	TenantID    string
	PropertyID  string
	Unit        string
	Description string
}

// Candidate is a tenant whose name, reference or unit appears in a description.
type Candidate struct {
	Tenant     domain.Tenant
	Confidence float64
	MatchedOn  string // reference, name or unit

	specificity int
}

// Resolution is the result of Resolve. Tenant is only meaningful when Status is matched.
type Resolution struct {
	Tenant     domain.Tenant
	Status     MatchStatus
	Method     MatchMethod
	Confidence float64
	Candidates []Candidate
}

// Matched reports whether a single tenant was identified.
func (r Resolution) Matched() bool {
	return r.Status == MatchMatched
}

// CandidateIDs lists the tenant ids of the candidates in rank order.
func (r Resolution) CandidateIDs() []string {
	ids := make([]string, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		ids = append(ids, c.Tenant.CanonicalID())
	}
	return ids
}

// Resolver indexes a tenant set for matching external records. It is built per
// request from a fresh tenant list and is not safe to mutate after construction.
type Resolver struct {
	tenants []domain.Tenant
	byID    map[string]domain.Tenant
	byKey   map[string][]domain.Tenant
}

// UnitKey builds the lower-cased "<property>::<unit>" lookup key.
func UnitKey(propertyID, unit string) string {
	return strings.ToLower(strings.TrimSpace(propertyID)) + "::" + strings.ToLower(strings.TrimSpace(unit))
}

// NewResolver indexes tenants by canonical id and by property/unit keys.
func NewResolver(tenants []domain.Tenant) *Resolver {
	r := &Resolver{
		tenants: make([]domain.Tenant, 0, len(tenants)),
		byID:    make(map[string]domain.Tenant, len(tenants)),
		byKey:   make(map[string][]domain.Tenant),
	}
	for _, t := range tenants {
		id := t.CanonicalID()
		if id == "" {
			continue
		}
		if _, seen := r.byID[id]; seen {
			continue
		}
		r.byID[id] = t
		r.tenants = append(r.tenants, t)

		if strings.TrimSpace(t.Unit) == "" {
			continue
		}
		r.addKey(UnitKey(t.PropertyID, t.Unit), t)
		r.addKey(UnitKey("", t.Unit), t)
	}
	return r
}

func (r *Resolver) addKey(key string, t domain.Tenant) {
	for _, existing := range r.byKey[key] {
		if existing.CanonicalID() == t.CanonicalID() {
			return
		}
	}
	r.byKey[key] = append(r.byKey[key], t)
}

// Tenants returns the indexed tenants in input order.
func (r *Resolver) Tenants() []domain.Tenant {
	return r.tenants
}

// ByID looks a tenant up by any id representation.
func (r *Resolver) ByID(id any) (domain.Tenant, bool) {
	t, ok := r.byID[domain.NormalizeTenantID(id)]
	return t, ok
}

// Resolve maps a record to a tenant.
//
// An explicit tenant id is authoritative: if it is present but unknown the record
// is unmatched and no fallback runs. Without an id the property/unit key is tried,
// then the unit alone, then the free-text description. A key or description that
// points at several tenants equally is ambiguous and never guessed.
func (r *Resolver) Resolve(in MatchInput) Resolution {
	if id := domain.NormalizeTenantID(in.TenantID); id != "" {
		if t, ok := r.byID[id]; ok {
			return Resolution{Tenant: t, Status: MatchMatched, Method: MethodTenantID, Confidence: ConfidenceTenantID}
		}
		return Resolution{Status: MatchUnmatched, Method: MethodTenantID}
	}

	if strings.TrimSpace(in.Unit) != "" {
		if strings.TrimSpace(in.PropertyID) != "" {
			if res, ok := r.byUnitKey(UnitKey(in.PropertyID, in.Unit), MethodPropertyUnit, ConfidencePropertyUnit); ok {
				return res
			}
		}
		if res, ok := r.byUnitKey(UnitKey("", in.Unit), MethodUnit, ConfidenceUnitOnly); ok {
			return res
		}
	}

	candidates := r.Candidates(in.Description)
	if len(candidates) == 0 {
		return Resolution{Status: MatchUnmatched}
	}
	top := candidates[0]
	if len(candidates) > 1 && candidates[1].Confidence == top.Confidence && candidates[1].specificity == top.specificity {
		tied := []Candidate{}
		for _, c := range candidates {
			if c.Confidence == top.Confidence && c.specificity == top.specificity {
				tied = append(tied, c)
			}
		}
		return Resolution{Status: MatchAmbiguous, Method: MethodDescription, Confidence: top.Confidence, Candidates: tied}
	}
	return Resolution{
		Tenant:     top.Tenant,
		Status:     MatchMatched,
		Method:     MethodDescription,
		Confidence: top.Confidence,
		Candidates: candidates,
	}
}

func (r *Resolver) byUnitKey(key string, method MatchMethod, confidence float64) (Resolution, bool) {
	hits := r.byKey[key]
	switch len(hits) {
	case 0:
		return Resolution{}, false
	case 1:
		return Resolution{Tenant: hits[0], Status: MatchMatched, Method: method, Confidence: confidence}, true
	default:
		candidates := make([]Candidate, 0, len(hits))
		for _, t := range hits {
			candidates = append(candidates, Candidate{Tenant: t, Confidence: confidence, MatchedOn: "unit"})
		}
		return Resolution{Status: MatchAmbiguous, Method: method, Confidence: confidence, Candidates: candidates}, true
	}
}

// Candidates ranks every tenant whose reference, name or unit appears in the
// description. Each tenant appears at most once with its strongest match. Results
// are ordered by confidence, then by length of the matched text, then tenant id.
func (r *Resolver) Candidates(description string) []Candidate {
	text := strings.ToLower(strings.TrimSpace(description))
	if text == "" {
		return nil
	}
	tokens := tokenize(text)

	var out []Candidate
	for _, t := range r.tenants {
		best := Candidate{Tenant: t}
		consider := func(conf float64, on string, spec int) {
			if conf > best.Confidence || (conf == best.Confidence && spec > best.specificity) {
				best.Confidence, best.MatchedOn, best.specificity = conf, on, spec
			}
		}

		if ref := strings.ToLower(strings.TrimSpace(t.Reference)); len(ref) >= minTextMatchLen && strings.Contains(text, ref) {
			consider(ConfidenceReference, "reference", len(ref))
		}
		if name := strings.ToLower(strings.TrimSpace(t.Name)); len(name) >= minTextMatchLen && strings.Contains(text, name) {
			consider(ConfidenceName, "name", len(name))
		}
		if unit := tokenize(strings.ToLower(t.Unit)); len(unit) > 0 && containsRun(tokens, unit) {
			consider(ConfidenceUnitToken, "unit", len(strings.Join(unit, " ")))
		}

		if best.Confidence > 0 {
			out = append(out, best)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		if out[i].specificity != out[j].specificity {
			return out[i].specificity > out[j].specificity
		}
		return out[i].Tenant.CanonicalID() < out[j].Tenant.CanonicalID()
	})
	return out
}

// Partition resolves each bank row and groups the matched ones by canonical tenant id.
// Matched rows get their TenantID filled in. Everything else comes back as a rejection.
func (r *Resolver) Partition(rows []domain.BankTransaction) (map[string][]domain.BankTransaction, []domain.Rejection) {
	byTenant := make(map[string][]domain.BankTransaction)
	var rejections []domain.Rejection
	for _, row := range rows {
		res := r.Resolve(MatchInput{
			TenantID:    row.TenantID,
			PropertyID:  row.PropertyID,
			Unit:        row.Unit,
			Description: row.Description,
		})
		switch res.Status {
		case MatchMatched:
			id := res.Tenant.CanonicalID()
			row.TenantID = id
			byTenant[id] = append(byTenant[id], row)
		case MatchAmbiguous:
			rejections = append(rejections, domain.Rejection{
				Source: domain.SourceBank, RecordID: row.TransactionID,
				Reason: domain.RejectAmbiguousTenant, Detail: string(res.Method),
				Candidates: res.CandidateIDs(),
			})
		default:
			rejections = append(rejections, domain.Rejection{
				Source: domain.SourceBank, RecordID: row.TransactionID,
				Reason: domain.RejectUnmatchedTenant, Detail: row.Description,
			})
		}
	}
	return byTenant, rejections
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsRun reports whether needle appears as a contiguous run of tokens in haystack.
func containsRun(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
