package entity

// db model, read-only from the API's perspective: rows are written
// by the external ingestion pipeline
type Tender struct {
	Id             int64   `json:"id" db:"id"`
	ReferenceCode  string  `json:"reference_code" db:"reference_code"`
	RequestName    string  `json:"request_name" db:"request_name"`
	Phase          string  `json:"phase" db:"phase"`
	State          string  `json:"state" db:"state"`
	ProcedureType  string  `json:"procedure_type" db:"procedure_type"`
	BaseTotalPrice float64 `json:"base_total_price" db:"base_total_price"`
	DetailUrl      string  `json:"detail_url" db:"detail_url"`
	TotalLotes     int     `json:"total_lotes" db:"total_lotes"`
	CreatedAt      string  `json:"created_at" db:"created_at"`
}

type Buyer struct {
	Id         int64  `json:"id" db:"id"`
	TenderId   int64  `json:"tender_id" db:"tender_id"`
	Name       string `json:"name" db:"name"`
	ProfileUrl string `json:"profile_url" db:"profile_url"`
}

type Mipymes struct {
	Id                     int64 `json:"id" db:"id"`
	TenderId               int64 `json:"tender_id" db:"tender_id"`
	DirigidoMipymes        bool  `json:"dirigido_mipymes" db:"dirigido_mipymes"`
	DirigidoMipymesMujeres bool  `json:"dirigido_mipymes_mujeres" db:"dirigido_mipymes_mujeres"`
}

type Item struct {
	Id                     int64   `json:"id" db:"id"`
	LoteId                 int64   `json:"lote_id" db:"lote_id"`
	Referencia             string  `json:"referencia" db:"referencia"`
	CodigoUnspsc           string  `json:"codigo_unspsc" db:"codigo_unspsc"`
	CuentaPresupuestaria   string  `json:"cuenta_presupuestaria" db:"cuenta_presupuestaria"`
	Descripcion            string  `json:"descripcion" db:"descripcion"`
	Cantidad               float64 `json:"cantidad" db:"cantidad"`
	Unidad                 string  `json:"unidad" db:"unidad"`
	PrecioUnitarioEstimado float64 `json:"precio_unitario_estimado" db:"precio_unitario_estimado"`
	PrecioTotalEstimado    float64 `json:"precio_total_estimado" db:"precio_total_estimado"`
}

type Lote struct {
	Id         int64  `json:"id" db:"id"`
	TenderId   int64  `json:"tender_id" db:"tender_id"`
	LoteNumber int    `json:"lote_number" db:"lote_number"`
	Name       string `json:"name" db:"name"`
	Items      []Item `json:"items"`
}

// detail model: tender plus its related aggregates
type TenderDetail struct {
	Tender
	Buyer   *Buyer   `json:"buyer"`
	Mipymes *Mipymes `json:"mipymes"`
	Lotes   []Lote   `json:"lotes"`
}

// controller model for /api/tenders
type TenderList struct {
	Data       []Tender   `json:"data"`
	Pagination Pagination `json:"pagination"`
}
