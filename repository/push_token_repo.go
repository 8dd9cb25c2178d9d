package repository

import (
	"time"

	"github.com/appditto/survey-push-server/models/dbmodels"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

// Repository for SQL operations on registered push tokens
type PushTokenRepo struct {
	DB *gorm.DB
}

func (repo *PushTokenRepo) CreateMockTokens() error {
	tokens := []*dbmodels.PushToken{
		{Token: "ExponentPushToken[token1]", Platform: "ios"},
		{Token: "ExponentPushToken[token2]", Platform: "android"},
	}
	for _, token := range tokens {
		if err := repo.DB.Create(token).Error; err != nil {
			return err
		}
	}
	return nil
}

// Most recently registered first
func (repo *PushTokenRepo) GetTokens() ([]dbmodels.PushToken, error) {
	var tokens []dbmodels.PushToken
	if err := repo.DB.Order("updated_at desc").Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (repo *PushTokenRepo) AddOrUpdateToken(token string, platform string) error {
	var count int64
	err := repo.DB.Model(&dbmodels.PushToken{}).Where("token = ?", token).Count(&count).Error
	if err != nil || count == 0 {
		pushToken := &dbmodels.PushToken{
			Token:    token,
			Platform: platform,
		}
		if err = repo.DB.Create(pushToken).Error; err != nil {
			return err
		}
	} else if count > 0 {
		// Already registered, bump updated_at
		if err = repo.DB.Model(&dbmodels.PushToken{}).Where("token = ?", token).Updates(map[string]interface{}{
			"platform":   platform,
			"updated_at": time.Now().UTC(),
		}).Error; err != nil {
			klog.Errorf("Error updating push token updated_at %v", err)
			return err
		}
	}
	return nil
}
