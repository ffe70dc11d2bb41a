package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entradas (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    maquina       TEXT NOT NULL,
    tipo          TEXT NOT NULL,
    valor         REAL NOT NULL,
    data_registro TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS despesas (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    titulo     TEXT NOT NULL,
    valor      REAL NOT NULL,
    data_saida TEXT NOT NULL,
    recorrente INTEGER NOT NULL,
    frequencia TEXT
);

CREATE INDEX IF NOT EXISTS idx_entradas_tipo_data ON entradas(tipo, data_registro);
`
