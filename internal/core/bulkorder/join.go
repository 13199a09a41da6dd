package bulkorder

import "bulk-order-service/internal/domain"

// indexBuyers keys buyers by cleaned tax id. On duplicates the first record in
// file order is kept.
func indexBuyers(buyers []domain.BuyerRecord) map[string]*domain.BuyerRecord {
	idx := make(map[string]*domain.BuyerRecord, len(buyers))
	for i := range buyers {
		key := buyers[i].CleanTaxID
		if key == "" {
			continue
		}
		if _, seen := idx[key]; seen {
			continue
		}
		idx[key] = &buyers[i]
	}
	return idx
}

// JoinBuyers left-joins transactions to buyers on cleaned tax id. Every
// transaction is kept; unmatched rows keep empty buyer fields.
func JoinBuyers(txs []domain.TransactionRow, buyers []domain.BuyerRecord) (matched int) {
	idx := indexBuyers(buyers)
	for i := range txs {
		tx := &txs[i]
		tx.BuyerName, tx.BuyerEmail, tx.MatchedTaxID, tx.Buyer = "", "", "", nil

		buyer, ok := idx[tx.TaxID]
		if !ok || tx.TaxID == "" {
			continue
		}
		tx.BuyerName = buyer.Name
		tx.BuyerEmail = buyer.Email
		tx.MatchedTaxID = buyer.CleanTaxID
		tx.Buyer = buyer
		matched++
	}
	return matched
}

// DeriveNames fills first/last name and initials suffix from the joined buyer name.
func DeriveNames(txs []domain.TransactionRow) {
	for i := range txs {
		txs[i].FirstName, txs[i].LastName = SplitName(txs[i].BuyerName)
		txs[i].Suffix = DeriveSuffix(txs[i].BuyerName)
	}
}
