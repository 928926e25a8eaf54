package dynamo

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/uni-match-api/internal/config"
	"github.com/uni-match-api/internal/domain"
)

var universitySeeds = []domain.University{
	{
		UniversityID: "utokyo", Name: "東京大学", City: "東京", Region: "関東", Country: "JP",
		Tags: []string{"国立", "総合"}, Programs: []string{"情報理工", "工学部", "経済学部"},
		VerificationLevel: domain.VerificationStrict, Website: "https://www.u-tokyo.ac.jp",
	},
	{
		UniversityID: "kyodai", Name: "京都大学", City: "京都", Region: "関西", Country: "JP",
		Tags: []string{"国立", "総合"}, Programs: []string{"総合人間", "工学部", "農学部"},
		VerificationLevel: domain.VerificationStrict, Website: "https://www.kyoto-u.ac.jp",
	},
	{
		UniversityID: "waseda", Name: "早稲田大学", City: "東京", Region: "関東", Country: "JP",
		Tags: []string{"私立", "文理複合"}, Programs: []string{"基幹理工", "政治経済", "商学部"},
		VerificationLevel: domain.VerificationBasic, Website: "https://www.waseda.jp",
	},
	{
		UniversityID: "keio", Name: "慶應義塾大学", City: "東京", Region: "関東", Country: "JP",
		Tags: []string{"私立", "文理複合"}, Programs: []string{"理工学部", "総合政策", "環境情報"},
		VerificationLevel: domain.VerificationBasic, Website: "https://www.keio.ac.jp",
	},
	{
		UniversityID: "osaka", Name: "大阪公立大学", City: "大阪", Region: "関西", Country: "JP",
		Tags: []string{"公立", "総合"}, Programs: []string{"経済学部", "医学部", "都市科学"},
		VerificationLevel: domain.VerificationBasic, Website: "https://www.omu.ac.jp",
	},
}

var profileSeeds = []domain.Profile{
	{
		ProfileID: "user_456", Name: "Mika Sato", Email: "mika.sato@waseda.jp", UniversityID: "waseda",
		Majors: []string{"Economics", "Data Science"}, Interests: []string{"AI ethics", "Music"},
		Languages: []string{"ja", "en"}, Bio: "Looking for research exchange opportunities.",
		PreferredLocations: []string{"Tokyo", "Osaka"},
	},
	{
		ProfileID: "candidate_001", Name: "Hiro Tanaka", Email: "hiro.tanaka@u-tokyo.ac.jp", UniversityID: "utokyo",
		Majors: []string{"Computer Science"}, Interests: []string{"Machine Learning", "Music", "Language Exchange"},
		Languages: []string{"ja", "en"}, Bio: "Interested in study abroad research projects.",
		PreferredLocations: []string{"Tokyo"},
	},
	{
		ProfileID: "candidate_002", Name: "Aiko Morita", Email: "aiko.morita@kyoto-u.ac.jp", UniversityID: "kyodai",
		Majors: []string{"Agriculture"}, Interests: []string{"Sustainability", "AI ethics"},
		Languages: []string{"ja"}, Bio: "Exploring smart agriculture and climate tech.",
		PreferredLocations: []string{"Kyoto", "Osaka"},
	},
	{
		ProfileID: "candidate_003", Name: "Daichi Suzuki", Email: "daichi.suzuki@keio.jp", UniversityID: "keio",
		Majors: []string{"Political Science", "Economics"}, Interests: []string{"Music", "Debate", "Policy"},
		Languages: []string{"ja", "en", "fr"}, Bio: "Looking to connect with students interested in policy research.",
		PreferredLocations: []string{"Tokyo"},
	},
}

var intentOptionSeeds = []domain.IntentOption{
	{IntentID: "same", Label: "同じ大学でマッチ", Description: "学内コミュニティを固めたい", RadiusKm: intPtr(0)},
	{IntentID: "nearby", Label: "近隣大学と繋がる", Description: "同じエリアでイベントをしたい", RadiusKm: intPtr(30)},
	{IntentID: "open", Label: "全国どこでも", Description: "進学・交換留学の相談をしたい", RadiusKm: nil},
}

var weightPresetSeeds = []domain.WeightPreset{
	{
		PresetID: "balanced", Title: "標準バランス",
		Weights: domain.PresetWeights{Interests: 0.5, Majors: 0.3, Languages: 0.2},
		Note:    "興味・専攻・言語の標準配分", IsActive: true,
	},
	{
		PresetID: "major", Title: "専攻マッチ重視",
		Weights: domain.PresetWeights{Interests: 0.25, Majors: 0.55, Languages: 0.2},
		Note:    "研究室・専門領域の近さを優先", IsActive: false,
	},
	{
		PresetID: "language", Title: "言語交換重視",
		Weights: domain.PresetWeights{Interests: 0.25, Majors: 0.2, Languages: 0.55},
		Note:    "言語交換・留学準備でマッチ", IsActive: false,
	},
}

var verificationFlagSeeds = []domain.VerificationFlag{
	{
		FlagID: "student_id", Label: "学籍番号 or ポータルで本人確認",
		Description: "ポータルスクリーンショットや学生証画像で在籍確認", Required: true,
	},
	{
		FlagID: "university_email", Label: "大学メールドメインで認証",
		Description: "学校発行メールアドレス宛のOTP送信で二段階チェック", Required: true,
	},
	{
		FlagID: "club_proof", Label: "サークル・学部の在籍証明をアップロード",
		Description: "課外活動の在籍証明を提出するとマッチング優先度を加点", Required: false,
	},
}

// Seed fills the catalog and demo-profile tables when they are empty.
// Existing rows are left untouched so operator edits survive restarts.
func Seed(ctx context.Context, client *dynamodb.Client, tables config.DynamoTables) {
	if tableEmpty(ctx, client, tables.Universities) {
		repo := NewUniversityRepo(client, tables.Universities)
		for i := range universitySeeds {
			if err := repo.Put(ctx, &universitySeeds[i]); err != nil {
				slog.Warn("seed university failed", "id", universitySeeds[i].UniversityID, "err", err)
			}
		}
	}

	if tableEmpty(ctx, client, tables.Profiles) {
		repo := NewProfileRepo(client, tables.Profiles)
		for i := range profileSeeds {
			if err := repo.Put(ctx, &profileSeeds[i]); err != nil {
				slog.Warn("seed profile failed", "id", profileSeeds[i].ProfileID, "err", err)
			}
		}
	}

	cfgRepo := NewConfigurationRepo(client, tables.IntentOptions, tables.WeightPresets, tables.Flags)
	if tableEmpty(ctx, client, tables.IntentOptions) {
		for i := range intentOptionSeeds {
			if err := cfgRepo.PutIntentOption(ctx, &intentOptionSeeds[i]); err != nil {
				slog.Warn("seed intent option failed", "id", intentOptionSeeds[i].IntentID, "err", err)
			}
		}
	}
	if tableEmpty(ctx, client, tables.WeightPresets) {
		for i := range weightPresetSeeds {
			if err := cfgRepo.PutWeightPreset(ctx, &weightPresetSeeds[i]); err != nil {
				slog.Warn("seed weight preset failed", "id", weightPresetSeeds[i].PresetID, "err", err)
			}
		}
	}
	if tableEmpty(ctx, client, tables.Flags) {
		for i := range verificationFlagSeeds {
			if err := cfgRepo.PutVerificationFlag(ctx, &verificationFlagSeeds[i]); err != nil {
				slog.Warn("seed verification flag failed", "id", verificationFlagSeeds[i].FlagID, "err", err)
			}
		}
	}
}

func tableEmpty(ctx context.Context, client *dynamodb.Client, tableName string) bool {
	out, err := client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(tableName),
		Limit:     aws.Int32(1),
	})
	if err != nil {
		slog.Warn("could not check table for seeding", "table", tableName, "err", err)
		return false
	}
	return len(out.Items) == 0
}

func intPtr(n int) *int { return &n }
