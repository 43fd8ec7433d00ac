package questions

import (
	"sort"

	"preshub/internal/core"
)

const (
	// AllRoles is the bucket for documents and briefs with no client role.
	AllRoles = "All Roles"

	// GeneralCategory is the bucket for seed categories with no name.
	GeneralCategory = "General"

	// RecentCategory is the synthetic category holding frequency-ranked
	// questions from previously saved briefs.
	RecentCategory = "Recent Briefs"

	// recentLimit caps how many (question, role) pairs the recency ranking keeps.
	recentLimit = 30
)

// NormalizeSeeds folds seed documents into role -> category -> questions.
// Documents may carry a single category+questions pair or a categories list;
// both collapse into the same structure. Question lists from multiple
// documents contributing to one (role, category) pair are concatenated in
// document order, duplicates included.
func NormalizeSeeds(docs []core.QuestionSeed) []core.RoleCategories {
	type bucket struct {
		role       string
		categories []string
		questions  map[string][]string
	}

	var order []string
	buckets := make(map[string]*bucket)

	get := func(role string) *bucket {
		if role == "" {
			role = AllRoles
		}
		b, ok := buckets[role]
		if !ok {
			b = &bucket{role: role, questions: make(map[string][]string)}
			buckets[role] = b
			order = append(order, role)
		}
		return b
	}

	add := func(b *bucket, name string, qs []string) {
		if name == "" {
			name = GeneralCategory
		}
		if _, seen := b.questions[name]; !seen {
			b.categories = append(b.categories, name)
		}
		for _, q := range qs {
			if q != "" {
				b.questions[name] = append(b.questions[name], q)
			}
		}
		if b.questions[name] == nil {
			b.questions[name] = []string{}
		}
	}

	for _, doc := range docs {
		b := get(doc.ClientRole)
		switch {
		case len(doc.Categories) > 0:
			for _, cat := range doc.Categories {
				add(b, cat.Name, cat.Questions)
			}
		case doc.Category != "" && doc.Questions != nil:
			add(b, doc.Category, doc.Questions)
		}
	}

	result := make([]core.RoleCategories, 0, len(order))
	for _, role := range order {
		b := buckets[role]
		categories := make([]core.CategorizedQuestions, 0, len(b.categories))
		for _, name := range b.categories {
			categories = append(categories, core.CategorizedQuestions{
				Name:      name,
				Questions: b.questions[name],
			})
		}
		result = append(result, core.RoleCategories{Role: role, Categories: categories})
	}
	return result
}

// RankRecentQuestions builds the recency source from saved briefs: newest
// first, discovery questions flattened to (question, role) pairs, counted,
// ranked by recurrence, capped, then regrouped per role under a single
// "Recent Briefs" category. Equal counts keep the order of the underlying
// stable sort (first-seen flattening order).
func RankRecentQuestions(records []core.BriefRecord) []core.RoleCategories {
	sorted := make([]core.BriefRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	type pair struct {
		question string
		role     string
	}

	counts := make(map[pair]int)
	var seen []pair
	for _, rec := range sorted {
		role := rec.Brief.ClientRole
		for _, q := range rec.Brief.DiscoveryQuestions {
			p := pair{question: q, role: role}
			if counts[p] == 0 {
				seen = append(seen, p)
			}
			counts[p]++
		}
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})
	if len(seen) > recentLimit {
		seen = seen[:recentLimit]
	}

	var order []string
	grouped := make(map[string][]string)
	for _, p := range seen {
		if p.question == "" {
			continue
		}
		role := p.role
		if role == "" {
			role = AllRoles
		}
		if _, ok := grouped[role]; !ok {
			order = append(order, role)
		}
		grouped[role] = append(grouped[role], p.question)
	}

	result := make([]core.RoleCategories, 0, len(order))
	for _, role := range order {
		result = append(result, core.RoleCategories{
			Role: role,
			Categories: []core.CategorizedQuestions{
				{Name: RecentCategory, Questions: grouped[role]},
			},
		})
	}
	return result
}

// Merge folds the recency source into the seed result. Roles already present
// get the "Recent Briefs" category prepended ahead of their seed categories;
// new roles are inserted at the front of the overall list so recently
// relevant roles surface above the static seed roles.
func Merge(seed, recent []core.RoleCategories) []core.RoleCategories {
	merged := make([]core.RoleCategories, len(seed))
	copy(merged, seed)

	for _, entry := range recent {
		found := false
		for i := range merged {
			if merged[i].Role == entry.Role {
				merged[i].Categories = append(
					append([]core.CategorizedQuestions{}, entry.Categories...),
					merged[i].Categories...,
				)
				found = true
				break
			}
		}
		if !found {
			merged = append([]core.RoleCategories{entry}, merged...)
		}
	}
	return merged
}
