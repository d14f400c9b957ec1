package store

// SQL for the client record database. Дополнительные выборки с
// динамическим IN собираются через squirrel прямо в методах.

const recipientColumns = `id, kind, service_id, e164, group_id, master_key, storage_id_raw, dirty,
	given_name, family_name, profile_key, identity_key,
	blocked, profile_sharing, archived, forced_unread, mute_until,
	gv1_migrated, unknown_fields`

const (
	queryRecipientIDs = `
		SELECT kind, storage_id_raw FROM recipients
		WHERE storage_id_raw IS NOT NULL`

	queryAccountID = `
		SELECT storage_id_raw FROM account_settings
		WHERE id = 1 AND storage_id_raw IS NOT NULL`

	queryUnknownIDs = `
		SELECT raw, rtype FROM unknown_records`

	queryContactByServiceID = `
		SELECT ` + recipientColumns + ` FROM recipients
		WHERE kind = ? AND service_id = ?`

	queryContactByE164 = `
		SELECT ` + recipientColumns + ` FROM recipients
		WHERE kind = ? AND e164 = ?`

	queryGroupV1ByID = `
		SELECT ` + recipientColumns + ` FROM recipients
		WHERE kind = ? AND group_id = ?`

	queryGroupV2ByMasterKey = `
		SELECT ` + recipientColumns + ` FROM recipients
		WHERE kind = ? AND master_key = ?`

	queryRecipientByStorageID = `
		SELECT ` + recipientColumns + ` FROM recipients
		WHERE storage_id_raw = ?`

	queryRecipientsByDirty = `
		SELECT ` + recipientColumns + ` FROM recipients
		WHERE dirty = ?
		ORDER BY id`

	queryInsertRecipient = `
		INSERT INTO recipients (kind, service_id, e164, group_id, master_key, storage_id_raw, dirty,
			given_name, family_name, profile_key, identity_key,
			blocked, profile_sharing, archived, forced_unread, mute_until,
			gv1_migrated, unknown_fields)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	queryUpdateRecipient = `
		UPDATE recipients SET
			kind = ?, service_id = ?, e164 = ?, group_id = ?, master_key = ?, storage_id_raw = ?, dirty = ?,
			given_name = ?, family_name = ?, profile_key = ?, identity_key = ?,
			blocked = ?, profile_sharing = ?, archived = ?, forced_unread = ?, mute_until = ?,
			gv1_migrated = ?, unknown_fields = ?
		WHERE id = ?`

	queryUpdateStorageID = `
		UPDATE recipients SET storage_id_raw = ? WHERE id = ?`

	queryGetAccount = `
		SELECT service_id, storage_id_raw, given_name, family_name, avatar_url_path,
			note_to_self_archived, read_receipts, typing_indicators, sealed_sender_indicators, link_previews,
			dirty, unknown_fields
		FROM account_settings WHERE id = 1`

	querySaveAccount = `
		INSERT INTO account_settings (id, service_id, storage_id_raw, given_name, family_name, avatar_url_path,
			note_to_self_archived, read_receipts, typing_indicators, sealed_sender_indicators, link_previews,
			dirty, unknown_fields)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			service_id = excluded.service_id,
			storage_id_raw = excluded.storage_id_raw,
			given_name = excluded.given_name,
			family_name = excluded.family_name,
			avatar_url_path = excluded.avatar_url_path,
			note_to_self_archived = excluded.note_to_self_archived,
			read_receipts = excluded.read_receipts,
			typing_indicators = excluded.typing_indicators,
			sealed_sender_indicators = excluded.sealed_sender_indicators,
			link_previews = excluded.link_previews,
			dirty = excluded.dirty,
			unknown_fields = excluded.unknown_fields`

	queryInsertUnknownRecord = `
		INSERT INTO unknown_records (raw, rtype, payload) VALUES (?, ?, ?)
		ON CONFLICT(raw) DO UPDATE SET rtype = excluded.rtype, payload = excluded.payload`
)
