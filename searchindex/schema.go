package searchindex

// Index schema types for the Azure AI Search management REST API.
// Only the subset of the schema this module provisions is modeled.

type indexDefinition struct {
	Name         string                `json:"name"`
	Fields       []fieldDefinition     `json:"fields"`
	VectorSearch vectorSearchConfig    `json:"vectorSearch"`
	Semantic     semanticConfiguration `json:"semantic"`
}

type fieldDefinition struct {
	Name                string `json:"name"`
	Type                string `json:"type"`
	Key                 bool   `json:"key,omitempty"`
	Filterable          *bool  `json:"filterable,omitempty"`
	Searchable          *bool  `json:"searchable,omitempty"`
	Analyzer            string `json:"analyzer,omitempty"`
	Dimensions          int    `json:"dimensions,omitempty"`
	VectorSearchProfile string `json:"vectorSearchProfile,omitempty"`
}

type vectorSearchConfig struct {
	Algorithms []vectorAlgorithm     `json:"algorithms"`
	Profiles   []vectorSearchProfile `json:"profiles"`
}

type vectorAlgorithm struct {
	Name           string         `json:"name"`
	Kind           string         `json:"kind"`
	HNSWParameters hnswParameters `json:"hnswParameters"`
}

type hnswParameters struct {
	M              int    `json:"m"`
	EfConstruction int    `json:"efConstruction"`
	EfSearch       int    `json:"efSearch"`
	Metric         string `json:"metric"`
}

type vectorSearchProfile struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
}

type semanticConfiguration struct {
	Configurations []semanticConfig `json:"configurations"`
}

type semanticConfig struct {
	Name              string            `json:"name"`
	PrioritizedFields prioritizedFields `json:"prioritizedFields"`
}

type prioritizedFields struct {
	PrioritizedContentFields []semanticField `json:"prioritizedContentFields"`
}

type semanticField struct {
	FieldName string `json:"fieldName"`
}

func boolPtr(b bool) *bool { return &b }

// newIndexDefinition builds the index schema: an id key, filterable
// document/chunk identifiers, searchable content with the English
// Microsoft analyzer, an HNSW-indexed embedding field of the given
// dimension, and a semantic configuration prioritizing content.
func newIndexDefinition(name string, dimension int) indexDefinition {
	return indexDefinition{
		Name: name,
		Fields: []fieldDefinition{
			{Name: "id", Type: "Edm.String", Key: true, Filterable: boolPtr(false), Searchable: boolPtr(false)},
			{Name: "document_id", Type: "Edm.String", Filterable: boolPtr(true), Searchable: boolPtr(false)},
			{Name: "chunk_id", Type: "Edm.String", Filterable: boolPtr(true), Searchable: boolPtr(false)},
			{Name: "content", Type: "Edm.String", Searchable: boolPtr(true), Analyzer: "en.microsoft"},
			{
				Name:                "embedding",
				Type:                "Collection(Edm.Single)",
				Searchable:          boolPtr(true),
				Dimensions:          dimension,
				VectorSearchProfile: "vector-profile",
			},
			{Name: "source", Type: "Edm.String", Filterable: boolPtr(true), Searchable: boolPtr(false)},
		},
		VectorSearch: vectorSearchConfig{
			Algorithms: []vectorAlgorithm{
				{
					Name: "hnsw-algorithm",
					Kind: "hnsw",
					HNSWParameters: hnswParameters{
						M:              4,
						EfConstruction: 400,
						EfSearch:       500,
						Metric:         "cosine",
					},
				},
			},
			Profiles: []vectorSearchProfile{
				{Name: "vector-profile", Algorithm: "hnsw-algorithm"},
			},
		},
		Semantic: semanticConfiguration{
			Configurations: []semanticConfig{
				{
					Name: "semantic-config",
					PrioritizedFields: prioritizedFields{
						PrioritizedContentFields: []semanticField{{FieldName: "content"}},
					},
				},
			},
		},
	}
}
