package mysql

const createCarMakesSQL = `
CREATE TABLE IF NOT EXISTS car_makes (
  id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  name        VARCHAR(100) NOT NULL,
  description TEXT,
  UNIQUE KEY uq_make_name (name)
)`

const createCarModelsSQL = `
CREATE TABLE IF NOT EXISTS car_models (
  id      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  make_id BIGINT UNSIGNED NOT NULL,
  name    VARCHAR(100) NOT NULL,
  type    VARCHAR(10)  NOT NULL DEFAULT 'SUV',
  year    INT          NOT NULL DEFAULT 2023,
  UNIQUE KEY uq_model (make_id, name),
  CONSTRAINT fk_model_make FOREIGN KEY (make_id) REFERENCES car_makes(id) ON DELETE CASCADE
)`

const createUsersSQL = `
CREATE TABLE IF NOT EXISTS users (
  id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
  username      VARCHAR(150) NOT NULL,
  password_hash VARCHAR(100) NOT NULL,
  first_name    VARCHAR(150) NOT NULL DEFAULT '',
  last_name     VARCHAR(150) NOT NULL DEFAULT '',
  email         VARCHAR(254) NOT NULL DEFAULT '',
  created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  UNIQUE KEY uq_username (username)
)`

const countMakesSQL = `SELECT COUNT(*) FROM car_makes`

// INSERT IGNORE under the unique keys keeps the seed idempotent even when two
// requests observe an empty catalog at the same time.
const insertMakeSQL = `INSERT IGNORE INTO car_makes (name, description) VALUES (?, ?)`

const selectMakeIDSQL = `SELECT id FROM car_makes WHERE name = ?`

const insertModelSQL = `INSERT IGNORE INTO car_models (make_id, name, type, year) VALUES (?, ?, ?, ?)`

const listCarsSQL = `
SELECT mo.name, ma.name
FROM car_models mo
JOIN car_makes ma ON ma.id = mo.make_id
ORDER BY ma.name, mo.name`

const insertUserSQL = `
INSERT INTO users (username, password_hash, first_name, last_name, email)
VALUES (?, ?, ?, ?, ?)`

const getUserSQL = `
SELECT id, username, password_hash, first_name, last_name, email
FROM users
WHERE username = ?`
