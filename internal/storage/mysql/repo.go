package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"rentwatch/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func marshalList(ss []string) string {
	if ss == nil {
		ss = []string{}
	}
	b, _ := json.Marshal(ss)
	return string(b)
}

// riskArgs maps the optional risk fields to nullable columns; a property
// without a level stores NULLs, never a zero score.
func riskArgs(score int, level domain.RiskLevel, factors []string) (any, any, any) {
	if level == "" {
		return nil, nil, nil
	}
	return score, string(level), marshalList(factors)
}

func (r *Repo) SaveProperty(ctx context.Context, p domain.Property) error {
	score, level, factors := riskArgs(p.RiskScore, p.RiskLevel, p.RiskFactors)
	_, err := r.db.ExecContext(ctx, insertPropertySQL,
		p.ID, p.Title, p.Address, p.Price, p.Size, p.Rooms, p.Bathrooms,
		p.Description, marshalList(p.Images), p.LandlordID, p.LandlordName,
		p.CreatedAt, p.UpdatedAt, score, level, factors,
	)
	return err
}

func (r *Repo) UpdateProperty(ctx context.Context, p domain.Property) error {
	score, level, factors := riskArgs(p.RiskScore, p.RiskLevel, p.RiskFactors)
	res, err := r.db.ExecContext(ctx, updatePropertySQL,
		p.Title, p.Address, p.Price, p.Size, p.Rooms, p.Bathrooms,
		p.Description, marshalList(p.Images), p.LandlordID, p.LandlordName,
		p.UpdatedAt, score, level, factors, p.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) DeleteProperty(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deletePropertySQL, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) SaveReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ID, rv.PropertyID, rv.UserID, rv.UserName, rv.Rating,
		rv.Content, rv.Pros, rv.Cons, marshalList(rv.Images),
		rv.CreatedAt, rv.UpdatedAt, rv.Helpful, rv.Reported,
	)
	return err
}

func (r *Repo) UpdateReview(ctx context.Context, rv domain.Review) error {
	res, err := r.db.ExecContext(ctx, updateReviewSQL, rv.Helpful, rv.Reported, rv.UpdatedAt, rv.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) SaveLandlord(ctx context.Context, l domain.Landlord) error {
	score, level, factors := riskArgs(l.RiskScore, l.RiskLevel, l.RiskFactors)
	_, err := r.db.ExecContext(ctx, upsertLandlordSQL,
		l.ID, l.Name, l.Properties, l.AverageRating, l.ReviewCount,
		score, level, factors,
	)
	return err
}

func scanProperty(row interface{ Scan(...any) error }) (domain.Property, error) {
	var p domain.Property
	var imagesJSON []byte
	var score sql.NullInt64
	var level sql.NullString
	var factorsJSON []byte

	if err := row.Scan(
		&p.ID, &p.Title, &p.Address, &p.Price, &p.Size, &p.Rooms, &p.Bathrooms,
		&p.Description, &imagesJSON, &p.LandlordID, &p.LandlordName,
		&p.CreatedAt, &p.UpdatedAt, &score, &level, &factorsJSON,
	); err != nil {
		return domain.Property{}, err
	}

	_ = json.Unmarshal(imagesJSON, &p.Images)
	if level.Valid {
		p.RiskLevel = domain.RiskLevel(level.String)
		p.RiskScore = int(score.Int64)
		_ = json.Unmarshal(factorsJSON, &p.RiskFactors)
	}
	return p, nil
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, listPropertiesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) GetProperty(ctx context.Context, id string) (domain.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, getPropertySQL, id))
	if err == sql.ErrNoRows {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, err
}

func scanReview(row interface{ Scan(...any) error }) (domain.Review, error) {
	var rv domain.Review
	var imagesJSON []byte
	if err := row.Scan(
		&rv.ID, &rv.PropertyID, &rv.UserID, &rv.UserName, &rv.Rating,
		&rv.Content, &rv.Pros, &rv.Cons, &imagesJSON,
		&rv.CreatedAt, &rv.UpdatedAt, &rv.Helpful, &rv.Reported,
	); err != nil {
		return domain.Review{}, err
	}
	_ = json.Unmarshal(imagesJSON, &rv.Images)
	return rv, nil
}

func (r *Repo) ListReviews(ctx context.Context, propertyID string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) GetReview(ctx context.Context, id string) (domain.Review, error) {
	rv, err := scanReview(r.db.QueryRowContext(ctx, getReviewSQL, id))
	if err == sql.ErrNoRows {
		return domain.Review{}, domain.ErrNotFound
	}
	return rv, err
}

func scanLandlord(row interface{ Scan(...any) error }) (domain.Landlord, error) {
	var l domain.Landlord
	var score sql.NullInt64
	var level sql.NullString
	var factorsJSON []byte
	if err := row.Scan(
		&l.ID, &l.Name, &l.Properties, &l.AverageRating, &l.ReviewCount,
		&score, &level, &factorsJSON,
	); err != nil {
		return domain.Landlord{}, err
	}
	if level.Valid {
		l.RiskLevel = domain.RiskLevel(level.String)
		l.RiskScore = int(score.Int64)
		_ = json.Unmarshal(factorsJSON, &l.RiskFactors)
	}
	return l, nil
}

func (r *Repo) ListLandlords(ctx context.Context) ([]domain.Landlord, error) {
	rows, err := r.db.QueryContext(ctx, listLandlordsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Landlord{}
	for rows.Next() {
		l, err := scanLandlord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *Repo) GetLandlord(ctx context.Context, id string) (domain.Landlord, error) {
	l, err := scanLandlord(r.db.QueryRowContext(ctx, getLandlordSQL, id))
	if err == sql.ErrNoRows {
		return domain.Landlord{}, domain.ErrNotFound
	}
	return l, err
}
