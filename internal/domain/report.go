package domain

import (
	"time"

	"github.com/google/uuid"
)

type DangerCategory string

const (
	CategoryBucaDissesto             DangerCategory = "buca_dissesto"
	CategoryTrafficoIntenso          DangerCategory = "traffico_intenso"
	CategoryScarsaVisibilita         DangerCategory = "scarsa_visibilita"
	CategoryIncrocioPericoloso       DangerCategory = "incrocio_pericoloso"
	CategoryMancanzaPistaCiclabile   DangerCategory = "mancanza_pista_ciclabile"
	CategoryPistaCiclabileInterrotta DangerCategory = "pista_ciclabile_interrotta"
	CategoryPistaCiclabileNonConnessa DangerCategory = "pista_ciclabile_non_connessa"
	CategorySegnaleticaAssente       DangerCategory = "segnaletica_assente"
	CategoryParcheggioSelvaggio      DangerCategory = "parcheggio_selvaggio"
)

var categories = map[DangerCategory]struct{}{
	CategoryBucaDissesto:              {},
	CategoryTrafficoIntenso:           {},
	CategoryScarsaVisibilita:          {},
	CategoryIncrocioPericoloso:        {},
	CategoryMancanzaPistaCiclabile:    {},
	CategoryPistaCiclabileInterrotta:  {},
	CategoryPistaCiclabileNonConnessa: {},
	CategorySegnaleticaAssente:        {},
	CategoryParcheggioSelvaggio:       {},
}

func (c DangerCategory) Valid() bool {
	_, ok := categories[c]
	return ok
}

// Report is one user's hazard observation. Immutable once created and
// always attached to exactly one spot.
type Report struct {
	ID          uuid.UUID      `json:"id"`
	SpotID      uuid.UUID      `json:"spot_id"`
	UserID      uuid.UUID      `json:"user_id"`
	Category    DangerCategory `json:"category"`
	Severity    int            `json:"severity"` // 1..5
	Description *string        `json:"description,omitempty"`
	PhotoURL    *string        `json:"photo_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}
