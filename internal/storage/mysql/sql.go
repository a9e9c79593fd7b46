package mysql

const insertPropertySQL = `
INSERT INTO properties
  (id, title, address, price, size, rooms, bathrooms, description, images,
   landlord_id, landlord_name, created_at, updated_at, risk_score, risk_level, risk_factors)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updatePropertySQL = `
UPDATE properties SET
  title         = ?,
  address       = ?,
  price         = ?,
  size          = ?,
  rooms         = ?,
  bathrooms     = ?,
  description   = ?,
  images        = ?,
  landlord_id   = ?,
  landlord_name = ?,
  updated_at    = ?,
  risk_score    = ?,
  risk_level    = ?,
  risk_factors  = ?
WHERE id = ?
`

const deletePropertySQL = `DELETE FROM properties WHERE id = ?`

const insertReviewSQL = `
INSERT INTO reviews
  (id, property_id, user_id, user_name, rating, content, pros, cons, images,
   created_at, updated_at, helpful, reported)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateReviewSQL = `
UPDATE reviews SET helpful = ?, reported = ?, updated_at = ? WHERE id = ?
`

const upsertLandlordSQL = `
INSERT INTO landlords
  (id, name, properties, average_rating, review_count, risk_score, risk_level, risk_factors)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name           = VALUES(name),
  properties     = VALUES(properties),
  average_rating = VALUES(average_rating),
  review_count   = VALUES(review_count),
  risk_score     = VALUES(risk_score),
  risk_level     = VALUES(risk_level),
  risk_factors   = VALUES(risk_factors)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const propertyColumns = `
  id, title, address, price, size, rooms, bathrooms, description, images,
  landlord_id, landlord_name, created_at, updated_at, risk_score, risk_level, risk_factors`

// seq preserves original insertion order, which the listing engine relies on.
const listPropertiesSQL = `SELECT` + propertyColumns + ` FROM properties ORDER BY seq`

const getPropertySQL = `SELECT` + propertyColumns + ` FROM properties WHERE id = ?`

const reviewColumns = `
  id, property_id, user_id, user_name, rating, content, pros, cons, images,
  created_at, updated_at, helpful, reported`

const listReviewsSQL = `SELECT` + reviewColumns + ` FROM reviews WHERE property_id = ? ORDER BY seq`

const getReviewSQL = `SELECT` + reviewColumns + ` FROM reviews WHERE id = ?`

const landlordColumns = `
  id, name, properties, average_rating, review_count, risk_score, risk_level, risk_factors`

const listLandlordsSQL = `SELECT` + landlordColumns + ` FROM landlords ORDER BY seq`

const getLandlordSQL = `SELECT` + landlordColumns + ` FROM landlords WHERE id = ?`
