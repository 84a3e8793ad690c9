package aws_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	awsclient "github.com/cyphera/cyphera-feesim/internal/client/aws"
	"github.com/cyphera/cyphera-feesim/internal/logger"
	"github.com/cyphera/cyphera-feesim/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
}

const testArn = "arn:aws:secretsmanager:us-east-1:123456789012:secret:cmc-key"

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	tests := []struct {
		name      string
		arn       string
		fallback  string
		setup     func(m *mocks.MockSecretsAPI)
		want      string
		wantErr   bool
		errString string
	}{
		{
			name: "secret from Secrets Manager",
			arn:  testArn,
			setup: func(m *mocks.MockSecretsAPI) {
				m.EXPECT().
					GetSecretValue(gomock.Any(), &secretsmanager.GetSecretValueInput{SecretId: aws.String(testArn)}).
					Return(&secretsmanager.GetSecretValueOutput{SecretString: aws.String("from-aws")}, nil)
			},
			want: "from-aws",
		},
		{
			name:     "fetch failure falls back",
			arn:      testArn,
			fallback: "from-env",
			setup: func(m *mocks.MockSecretsAPI) {
				m.EXPECT().GetSecretValue(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))
			},
			want: "from-env",
		},
		{
			name:     "empty secret falls back",
			arn:      testArn,
			fallback: "from-env",
			setup: func(m *mocks.MockSecretsAPI) {
				m.EXPECT().GetSecretValue(gomock.Any(), gomock.Any()).Return(&secretsmanager.GetSecretValueOutput{SecretString: aws.String("")}, nil)
			},
			want: "from-env",
		},
		{
			name:     "no arn uses fallback without calling AWS",
			fallback: "from-env",
			want:     "from-env",
		},
		{
			name: "fetch failure without fallback",
			arn:  testArn,
			setup: func(m *mocks.MockSecretsAPI) {
				m.EXPECT().GetSecretValue(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))
			},
			wantErr:   true,
			errString: "no fallback value set",
		},
		{
			name:      "nothing configured",
			wantErr:   true,
			errString: "secret not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockSecretsAPI(ctrl)
			if tt.setup != nil {
				tt.setup(api)
			}

			client := awsclient.NewSecretsManagerClientWithAPI(api)
			got, err := client.GetSecretString(context.Background(), tt.arn, tt.fallback)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
